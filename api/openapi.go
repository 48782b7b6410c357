package api

import (
	"fmt"
	"net/http"

	gin "github.com/gin-gonic/gin"
)

const openAPIPath = "/openapi.json"

type object = map[string]any

type queryParam struct {
	name        string
	schema      object
	description string
}

// listParams mirrors parseQuery, in priority order.
var listParams = []queryParam{
	{"search", object{"type": "string"}, "Search for trades by Counterparty, Instrument ID, Instrument name and Trader"},
	{"assetClass", object{"type": "string"}, "Filter by asset class."},
	{"tradeType", object{"type": "string", "enum": []string{"BUY", "SELL"}}, "Filter by trade type (BUY or SELL)."},
	{"minPrice", object{"type": "number"}, "Filter by minimum trade price. Combined with maxPrice it forms an inclusive range."},
	{"maxPrice", object{"type": "number"}, "Filter by maximum trade price."},
	{"start", object{"type": "string", "format": "date-time"}, "Filter by minimum trade date."},
	{"end", object{"type": "string", "format": "date-time"}, "Filter by maximum trade date."},
}

func ref(name string) object { return object{"$ref": "#/components/schemas/" + name} }

func jsonContent(schema object) object {
	return object{"application/json": object{"schema": schema}}
}

func response(description string, schema object) object {
	return object{"description": description, "content": jsonContent(schema)}
}

// openAPIDocument describes the routes registered in NewServer.
func openAPIDocument() object {
	params := make([]object, 0, len(listParams))
	for _, p := range listParams {
		params = append(params, object{
			"name":        p.name,
			"in":          "query",
			"required":    false,
			"description": p.description,
			"schema":      p.schema,
		})
	}

	return object{
		"openapi": "3.0.3",
		"info": object{
			"title":   "Trade Query API",
			"version": "1.0.0",
		},
		"paths": object{
			"/": object{"get": object{
				"summary":   "Welcome message",
				"responses": object{"200": response("Welcome", ref("Message"))},
			}},
			"/trades": object{"get": object{
				"summary":     "List trades",
				"description": "Only the highest-priority parameter present is applied, in the order listed.",
				"parameters":  params,
				"responses": object{
					"200": response("Matching trades", object{"type": "array", "items": ref("Trade")}),
					"404": response("No trade matches the applied filter", ref("Error")),
					"422": response("Unparsable number or timestamp", ref("Error")),
				},
			}},
			"/trades/{trade_id}": object{"get": object{
				"summary": "Get a trade by id",
				"parameters": []object{{
					"name":     "trade_id",
					"in":       "path",
					"required": true,
					"schema":   object{"type": "string"},
				}},
				"responses": object{
					"200": response("The trade", ref("Trade")),
					"404": response("Trade not found", ref("Error")),
				},
			}},
		},
		"components": object{"schemas": object{
			"Message": object{
				"type":       "object",
				"properties": object{"message": object{"type": "string"}},
			},
			"Error": object{
				"type":       "object",
				"properties": object{"detail": object{"type": "string"}},
			},
			"TradeDetails": object{
				"type":     "object",
				"required": []string{"buySellIndicator", "price", "quantity"},
				"properties": object{
					"buySellIndicator": object{"type": "string", "enum": []string{"BUY", "SELL"}},
					"price":            object{"type": "number"},
					"quantity":         object{"type": "integer"},
				},
			},
			"Trade": object{
				"type": "object",
				"required": []string{
					"instrument_id", "instrument_name", "trade_date_time",
					"trade_details", "trade_id", "trader",
				},
				"properties": object{
					"asset_class":     object{"type": "string"},
					"counterparty":    object{"type": "string"},
					"instrument_id":   object{"type": "string"},
					"instrument_name": object{"type": "string"},
					"trade_date_time": object{"type": "string", "format": "date-time"},
					"trade_details":   ref("TradeDetails"),
					"trade_id":        object{"type": "string"},
					"trader":          object{"type": "string"},
				},
			},
		}},
	}
}

const docsPage = `<!DOCTYPE html>
<html>
<head>
<title>Trade Query API</title>
<meta charset="utf-8">
<link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://cdn.jsdelivr.net/npm/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
<script>SwaggerUIBundle({url: %q, dom_id: "#swagger-ui"});</script>
</body>
</html>
`

var docsHTML = []byte(fmt.Sprintf(docsPage, openAPIPath))

func (s *Server) openAPI(c *gin.Context) {
	s.renderJSON(c, s.apiDoc)
}

// docs serves Swagger UI pointed at openAPIPath.
func (s *Server) docs(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", docsHTML)
}
