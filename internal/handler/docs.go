package handler

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed openapi.yaml
var openAPIDocument []byte

const docsPage = `<!DOCTYPE html>
<html>
<head>
  <title>Payment Automation API</title>
  <meta charset="utf-8"/>
  <meta name="viewport" content="width=device-width, initial-scale=1">
</head>
<body>
  <div id="docs"></div>
  <script src="https://unpkg.com/@stoplight/elements/web-components.min.js"></script>
  <link rel="stylesheet" href="https://unpkg.com/@stoplight/elements/styles.min.css">
  <script>
    const el = document.createElement("elements-api");
    el.setAttribute("apiDescriptionUrl", "/api-docs/openapi.yaml");
    el.setAttribute("router", "hash");
    document.getElementById("docs").appendChild(el);
  </script>
</body>
</html>`

// Docs serves the interactive API reference.
func Docs(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(docsPage))
}

// DocsSpec serves the raw OpenAPI document.
func DocsSpec(c *gin.Context) {
	c.Data(http.StatusOK, "application/yaml", openAPIDocument)
}
