package routers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/pelletier/go-toml/v2"
	"go-http-exercises/apierror"
	"go-http-exercises/contenttype"
	"go-http-exercises/models"
	"gopkg.in/yaml.v3"
)

func IntrospectionRoutes(rg *gin.RouterGroup) {
	getOrHead(rg, "/headers", GetHeaders)
	getOrHead(rg, "/browser", GetBrowserInfo)
	rg.POST("/echo", Echo)
	rg.POST("/validate-id", ValidateID)
}

// GetHeaders echoes the request headers as a flat object, repeated headers joined by ", ".
func GetHeaders(c *gin.Context) {
	headers := make(map[string]string, len(c.Request.Header)+1)
	for name, values := range c.Request.Header {
		headers[name] = strings.Join(values, ", ")
	}
	// net/http moves Host out of the header map
	if c.Request.Host != "" {
		headers["Host"] = c.Request.Host
	}
	c.JSON(http.StatusOK, headers)
}

type uaToken struct {
	needle string
	name   string
}

// candidate lists are checked in order and the first hit wins, so a Chrome user agent that
// also mentions Safari is reported as Chrome
var (
	browserTokens = []uaToken{
		{"Chrome", "Chrome"},
		{"Firefox", "Firefox"},
		{"Safari", "Safari"},
		{"Edge", "Edge"},
	}
	osTokens = []uaToken{
		{"Windows", "Windows"},
		{"Macintosh", "macOS"},
		{"Linux", "Linux"},
		{"Android", "Android"},
		{"iPhone", "iOS"},
		{"iPad", "iOS"},
	}
	mobileTokens = []string{"Mobile", "Android", "iPhone", "iPad"}
)

func firstMatch(userAgent string, tokens []uaToken) string {
	for _, token := range tokens {
		if strings.Contains(userAgent, token.needle) {
			return token.name
		}
	}
	return "Unknown"
}

// ClassifyUserAgent - browser family, operating system and mobile flag of a User-Agent.
func ClassifyUserAgent(userAgent string) models.BrowserInfo {
	info := models.BrowserInfo{
		Browser: firstMatch(userAgent, browserTokens),
		OS:      firstMatch(userAgent, osTokens),
	}
	for _, token := range mobileTokens {
		if strings.Contains(userAgent, token) {
			info.IsMobile = true
			break
		}
	}
	return info
}

func GetBrowserInfo(c *gin.Context) {
	c.JSON(http.StatusOK, ClassifyUserAgent(c.GetHeader("User-Agent")))
}

// Echo answers with the request body. Structured bodies are parsed and written back in
// their own format, form data comes back as a JSON object, anything else is returned as is.
func Echo(c *gin.Context) {
	declared := c.GetHeader("Content-Type")
	if declared == "" {
		declared = contenttype.TextPlain
	}
	body, err := c.GetRawData()
	if err != nil {
		fail(c, apierror.NewBadRequest("unreadable body", err))
		return
	}

	switch contenttype.Classify(declared) {
	case contenttype.KindJSON:
		data, err := decodeJSON(body)
		if err != nil {
			fail(c, apierror.NewBadRequest("invalid json body", err))
			return
		}
		c.JSON(http.StatusOK, data)
	case contenttype.KindForm:
		values, err := url.ParseQuery(string(body))
		if err != nil {
			fail(c, apierror.NewBadRequest("invalid form body", err))
			return
		}
		form := make(map[string]string, len(values))
		for key := range values {
			form[key] = values.Get(key)
		}
		c.JSON(http.StatusOK, form)
	case contenttype.KindYAML:
		docs, err := decodeYAML(body)
		if err != nil {
			fail(c, apierror.NewBadRequest("invalid yaml body", err))
			return
		}
		out, err := encodeYAML(docs)
		if err != nil {
			fail(c, apierror.NewInternalFault("yaml encode", err))
			return
		}
		c.Data(http.StatusOK, contenttype.MediaType(declared), out)
	case contenttype.KindTOML:
		var data map[string]any
		if err := toml.Unmarshal(body, &data); err != nil {
			fail(c, apierror.NewBadRequest("invalid toml body", err))
			return
		}
		out, err := toml.Marshal(data)
		if err != nil {
			fail(c, apierror.NewInternalFault("toml encode", err))
			return
		}
		c.Data(http.StatusOK, contenttype.TOML, out)
	default:
		c.Data(http.StatusOK, declared, body)
	}
}

// IsValidIDNumber - exactly 9 characters, 8 digits followed by a letter.
func IsValidIDNumber(id string) bool {
	if utf8.RuneCountInString(id) != 9 {
		return false
	}
	runes := []rune(id)
	for _, r := range runes[:8] {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return unicode.IsLetter(runes[8])
}

// ValidateID reports {"valid": bool}; a missing id_number is a 400 of its own.
func ValidateID(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil || body == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing id_number"})
		return
	}
	raw, ok := body["id_number"]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing id_number"})
		return
	}
	id, isString := raw.(string)
	c.JSON(http.StatusOK, gin.H{"valid": isString && IsValidIDNumber(id)})
}

// decodeJSON reads exactly one JSON value, numbers keep their literal text.
func decodeJSON(body []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var data any
	if err := dec.Decode(&data); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("trailing data after json value")
	}
	return data, nil
}

func decodeYAML(body []byte) ([]any, error) {
	dec := yaml.NewDecoder(bytes.NewReader(body))
	docs := []any{}
	for {
		var doc any
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			return docs, nil
		}
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
}

// encodeYAML writes docs back as one stream, separated by "---".
func encodeYAML(docs []any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	for _, doc := range docs {
		if err := enc.Encode(doc); err != nil {
			return nil, err
		}
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
