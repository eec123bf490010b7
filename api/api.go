// Package api ships the OpenAPI document served by the swagger UI.
package api

import _ "embed"

//go:embed openapi.json
var OpenAPISpec []byte
