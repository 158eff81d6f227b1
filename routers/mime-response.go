package routers

import (
	"bytes"
	"crypto/rand"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"go-http-exercises/apierror"
	"go-http-exercises/contenttype"
)

// mimeResponse - one fixed payload served under a fixed content type.
type mimeResponse struct {
	path        string
	contentType string
	headers     map[string]string
	payload     func() ([]byte, error)
}

func staticPayload(body string) func() ([]byte, error) {
	return func() ([]byte, error) {
		return []byte(body), nil
	}
}

var redSquarePNG = sync.OnceValues(func() ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 100))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: color.RGBA{R: 255, A: 255}}, image.Point{}, draw.Src)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
})

func randomPayload() ([]byte, error) {
	data := make([]byte, 1024)
	if _, err := rand.Read(data); err != nil {
		return nil, err
	}
	return data, nil
}

var mimeResponses = []mimeResponse{
	{path: "/text", contentType: contenttype.TextPlain, payload: staticPayload("Este es un texto plano")},
	{path: "/html", contentType: contenttype.TextHTML, payload: staticPayload("<h1>Este es un fragmento HTML</h1>")},
	{path: "/json", contentType: contenttype.JSON, payload: staticPayload(`{"mensaje":"Este es un objeto JSON"}`)},
	{path: "/xml", contentType: contenttype.XML, payload: staticPayload("<mensaje>Este es un documento XML</mensaje>")},
	{path: "/image", contentType: contenttype.PNG, payload: redSquarePNG},
	{
		path:        "/binary",
		contentType: contenttype.OctetStream,
		headers:     map[string]string{"Content-Disposition": "attachment; filename=binary.bin"},
		payload:     randomPayload,
	},
}

func MimeResponseRoutes(rg *gin.RouterGroup) {
	for _, response := range mimeResponses {
		getOrHead(rg, response.path, serveMimeResponse(response))
	}
}

func serveMimeResponse(response mimeResponse) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := response.payload()
		if err != nil {
			fail(c, apierror.NewInternalFault("build "+response.path+" payload", err))
			return
		}
		for name, value := range response.headers {
			c.Header(name, value)
		}
		c.Data(http.StatusOK, response.contentType, body)
	}
}
