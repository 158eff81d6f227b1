package routers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go-http-exercises/apierror"
	"go-http-exercises/contenttype"
	"go-http-exercises/models"
	"go-http-exercises/store"
)

// IngestPolicy - ingestion accepts any header containing the expected type.
const IngestPolicy = contenttype.Substring

const invalidContentType = "Invalid content type"

// ingestEndpoint - a POST endpoint gated on the declared content type.
type ingestEndpoint struct {
	path   string
	accept []string
	// plainReject answers a mismatch with text instead of a json body
	plainReject bool
	accepted    func(c *gin.Context, matched string, body []byte)
}

func MimeIngestRoutes(uploads store.UploadStore) func(rg *gin.RouterGroup) {
	endpoints := []ingestEndpoint{
		{path: "/text", accept: []string{contenttype.TextPlain}, plainReject: true, accepted: echoBody},
		{path: "/html", accept: []string{contenttype.TextHTML}, plainReject: true, accepted: echoBody},
		{path: "/json", accept: []string{contenttype.JSON}, accepted: echoBody},
		{path: "/xml", accept: []string{contenttype.XML}, plainReject: true, accepted: echoBody},
		{path: "/image", accept: []string{contenttype.PNG, contenttype.JPEG}, accepted: saveImage(uploads)},
		{path: "/binary", accept: []string{contenttype.OctetStream}, accepted: saveBinary(uploads)},
	}
	return func(rg *gin.RouterGroup) {
		for _, endpoint := range endpoints {
			rg.POST(endpoint.path, ingest(endpoint))
		}
	}
}

func ingest(endpoint ingestEndpoint) gin.HandlerFunc {
	return func(c *gin.Context) {
		matched, ok := contenttype.Match(c.GetHeader("Content-Type"), IngestPolicy, endpoint.accept...)
		if !ok {
			if endpoint.plainReject {
				c.String(http.StatusBadRequest, invalidContentType)
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": invalidContentType})
			}
			return
		}
		body, err := c.GetRawData()
		if err != nil {
			fail(c, apierror.NewBadRequest("unreadable body", err))
			return
		}
		endpoint.accepted(c, matched, body)
	}
}

func echoBody(c *gin.Context, matched string, body []byte) {
	c.Data(http.StatusOK, matched, body)
}

var imageExtensions = map[string]string{
	contenttype.PNG:  "png",
	contenttype.JPEG: "jpg",
}

func saveImage(uploads store.UploadStore) func(c *gin.Context, matched string, body []byte) {
	return func(c *gin.Context, matched string, body []byte) {
		name, err := uploads.Save("image", imageExtensions[matched], body)
		if err != nil {
			fail(c, apierror.NewInternalFault("store image upload", err))
			return
		}
		c.JSON(http.StatusOK, models.UploadResult{FileName: name, Size: len(body), Message: "Imagen guardada"})
	}
}

func saveBinary(uploads store.UploadStore) func(c *gin.Context, matched string, body []byte) {
	return func(c *gin.Context, matched string, body []byte) {
		name, err := uploads.Save("binary", "bin", body)
		if err != nil {
			fail(c, apierror.NewInternalFault("store binary upload", err))
			return
		}
		c.JSON(http.StatusOK, models.UploadResult{FileName: name, Size: len(body), Message: "Datos guardados"})
	}
}
