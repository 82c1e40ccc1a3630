// Package docs registers the OpenAPI document served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/flights": {
            "get": {
                "produces": ["application/json"],
                "summary": "Look up flights by IATA flight number",
                "parameters": [
                    {"type": "string", "description": "IATA flight number, e.g. AA100", "name": "flightNumber", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Flight"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            }
        },
        "/api/weather": {
            "get": {
                "produces": ["application/json"],
                "summary": "Current conditions at a coordinate, imperial units",
                "parameters": [
                    {"type": "number", "description": "Latitude", "name": "lat", "in": "query", "required": true},
                    {"type": "number", "description": "Longitude", "name": "lon", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Weather"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.errorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/api.errorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            }
        },
        "/api/airports/{code}": {
            "get": {
                "produces": ["application/json"],
                "summary": "Coordinates of a known airport",
                "parameters": [
                    {"type": "string", "description": "IATA airport code", "name": "code", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.airportResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            }
        },
        "/api/route": {
            "get": {
                "produces": ["application/json"],
                "summary": "Great-circle path between two airports",
                "parameters": [
                    {"type": "string", "description": "Origin IATA code", "name": "from", "in": "query", "required": true},
                    {"type": "string", "description": "Destination IATA code", "name": "to", "in": "query", "required": true},
                    {"type": "integer", "default": 100, "description": "Number of segments, 1..1000", "name": "points", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/itinerary.Route"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.errorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            }
        },
        "/api/itinerary": {
            "get": {
                "produces": ["application/json"],
                "summary": "Flights with weather, route and calendar link per flight",
                "parameters": [
                    {"type": "string", "description": "IATA flight number", "name": "flightNumber", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/itinerary.Card"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "summary": "Liveness and cache reachability",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.healthResponse"}}
                }
            }
        }
    },
    "definitions": {
        "api.errorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "api.airportResponse": {
            "type": "object",
            "properties": {"code": {"type": "string"}, "lat": {"type": "number"}, "lng": {"type": "number"}}
        },
        "api.healthResponse": {
            "type": "object",
            "properties": {"status": {"type": "string", "enum": ["ok", "degraded", "no_cache"]}}
        },
        "domain.Aircraft": {
            "type": "object",
            "properties": {"type": {"type": "string"}}
        },
        "domain.Flight": {
            "type": "object",
            "properties": {
                "flightNumber": {"type": "string"},
                "airline": {"type": "string"},
                "origin": {"$ref": "#/definitions/domain.Location"},
                "destination": {"$ref": "#/definitions/domain.Location"},
                "status": {"type": "string", "enum": ["On Time", "Delayed", "Cancelled"]},
                "aircraft": {"$ref": "#/definitions/domain.Aircraft"}
            }
        },
        "domain.Location": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "city": {"type": "string"},
                "time": {"type": "string"},
                "timezone": {"type": "string"},
                "terminal": {"type": "string"},
                "gate": {"type": "string"},
                "estimatedTime": {"type": "string"},
                "delayMinutes": {"type": "integer"},
                "baggage": {"type": "string"},
                "weather": {"$ref": "#/definitions/domain.Weather"}
            }
        },
        "domain.Weather": {
            "type": "object",
            "properties": {
                "temp": {"type": "integer"},
                "feelsLike": {"type": "integer"},
                "condition": {"type": "string"},
                "description": {"type": "string"},
                "icon": {"type": "string"},
                "humidity": {"type": "integer"},
                "windSpeed": {"type": "integer"},
                "pressure": {"type": "integer"}
            }
        },
        "geo.Coordinate": {
            "type": "object",
            "properties": {"lat": {"type": "number"}, "lng": {"type": "number"}}
        },
        "geo.Bounds": {
            "description": "[[minLat, minLng], [maxLat, maxLng]]",
            "type": "array",
            "items": {"type": "array", "items": {"type": "number"}}
        },
        "itinerary.Route": {
            "type": "object",
            "properties": {
                "from": {"$ref": "#/definitions/geo.Coordinate"},
                "to": {"$ref": "#/definitions/geo.Coordinate"},
                "path": {"type": "array", "items": {"$ref": "#/definitions/geo.Coordinate"}},
                "bounds": {"$ref": "#/definitions/geo.Bounds"},
                "pathBounds": {"$ref": "#/definitions/geo.Bounds"}
            }
        },
        "itinerary.Card": {
            "type": "object",
            "properties": {
                "flight": {"$ref": "#/definitions/domain.Flight"},
                "route": {"$ref": "#/definitions/itinerary.Route"},
                "calendarLink": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Flight Tracker API",
	Description:      "Flight status, airport weather and great-circle routes.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
