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
        "/health": {
            "get": {"tags": ["system"], "summary": "Health check", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}
        },
        "/auth/sign-up": {
            "post": {"tags": ["auth"], "summary": "Register an operator", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.Credentials"}}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "409": {"description": "Conflict"}, "500": {"description": "Internal Server Error"}}}
        },
        "/auth/sign-in": {
            "post": {"tags": ["auth"], "summary": "Obtain an access token", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.Credentials"}}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "401": {"description": "Unauthorized"}}}
        },
        "/api/v1/heating/connect": {"post": {"security": [{"BearerAuth": []}], "tags": ["heating"], "summary": "Connect to the controller", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/heating/disconnect": {"post": {"security": [{"BearerAuth": []}], "tags": ["heating"], "summary": "Disconnect from the controller", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/heating/power/on": {"post": {"security": [{"BearerAuth": []}], "tags": ["heating"], "summary": "Turn the unit on", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/heating/power/off": {"post": {"security": [{"BearerAuth": []}], "tags": ["heating"], "summary": "Turn the unit off", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/heating/boost/on": {"post": {"security": [{"BearerAuth": []}], "tags": ["heating"], "summary": "Turn boost mode on", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/heating/boost/off": {"post": {"security": [{"BearerAuth": []}], "tags": ["heating"], "summary": "Turn boost mode off", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/heating/boost": {"get": {"security": [{"BearerAuth": []}], "tags": ["heating"], "summary": "Boost mode and power warning", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/heating/temperature": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["heating"], "summary": "Setpoint and room temperature", "responses": {"200": {"description": "OK"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["heating"], "summary": "Set temperature",
                "description": "Accepts 14..30 inclusive; anything else is rejected with 422 and the setpoint is kept.",
                "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.TemperatureRequest"}}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "422": {"description": "Unprocessable Entity"}}}
        },
        "/api/v1/heating/display": {"get": {"security": [{"BearerAuth": []}], "tags": ["heating"], "summary": "Display line", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/heating/holiday": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["heating"], "summary": "Enable holiday mode",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.HolidayRequest"}}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "422": {"description": "Unprocessable Entity"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["heating"], "summary": "Disable holiday mode", "description": "The setpoint returns to 20.", "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/heating/mode": {"get": {"security": [{"BearerAuth": []}], "tags": ["heating"], "summary": "System mode", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/heating/schedules": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["schedules"], "summary": "List schedules or look one up",
                "parameters": [{"type": "string", "example": "16:00", "description": "Time of day, zero-padded HH:MM", "name": "time", "in": "query"}],
                "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["schedules"], "summary": "Add a schedule range",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.ScheduleRequest"}}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["schedules"], "summary": "Remove all schedules", "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/heating/welcome": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["heating"], "summary": "Welcome message", "responses": {"200": {"description": "OK"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["heating"], "summary": "Set welcome message",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.WelcomeRequest"}}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}
        },
        "/api/v1/heating/faults/{fault}": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["faults"], "summary": "Inject a fault",
                "parameters": [{"enum": ["rt-disconnect", "sensor-failure", "lan-disconnect"], "type": "string", "name": "fault", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}
        },
        "/api/v1/heating/error": {"get": {"security": [{"BearerAuth": []}], "tags": ["faults"], "summary": "Last fault", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/heating/state": {"get": {"security": [{"BearerAuth": []}], "tags": ["heating"], "summary": "Full controller state",
            "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.HeatingState"}}}}},
        "/api/v1/heating/history": {"get": {"security": [{"BearerAuth": []}], "tags": ["heating"], "summary": "Snapshot history",
            "parameters": [{"type": "integer", "name": "limit", "in": "query"}],
            "responses": {"200": {"description": "count, snapshots"}, "400": {"description": "Bad Request"}}}},
        "/api/v1/logs": {"get": {"security": [{"BearerAuth": []}], "tags": ["logs"], "summary": "List journal entries",
            "parameters": [
                {"type": "string", "name": "from", "in": "query"},
                {"type": "string", "name": "to", "in": "query"},
                {"type": "string", "name": "type", "in": "query"}
            ],
            "responses": {"200": {"description": "count, events"}, "400": {"description": "Bad Request"}}}},
        "/ws": {"get": {"tags": ["heating"], "summary": "Stream controller state",
            "parameters": [
                {"type": "string", "name": "interval", "in": "query"},
                {"type": "integer", "name": "interval_ms", "in": "query"}
            ],
            "responses": {"101": {"description": "Switching Protocols"}}}}
    },
    "definitions": {
        "handlers.Credentials": {"type": "object", "properties": {"username": {"type": "string", "example": "operator"}, "password": {"type": "string", "example": "s3cret"}}},
        "handlers.TemperatureRequest": {"type": "object", "properties": {"temperature": {"type": "integer", "example": 22}}},
        "handlers.HolidayRequest": {"type": "object", "properties": {"temperature": {"type": "integer", "example": 18}, "start": {"type": "string", "example": "01/08/2024"}, "end": {"type": "string", "example": "31/08/2024"}}},
        "handlers.ScheduleRequest": {"type": "object", "properties": {"start": {"type": "string", "example": "14:00"}, "end": {"type": "string", "example": "17:00"}, "temperature": {"type": "integer", "example": 22}}},
        "handlers.WelcomeRequest": {"type": "object", "properties": {"message": {"type": "string", "example": "Hi Manoel"}}},
        "models.ScheduleEntry": {"type": "object", "properties": {"start": {"type": "string"}, "end": {"type": "string"}, "temperature": {"type": "integer"}}},
        "models.HeatingState": {"type": "object", "properties": {
            "power_on": {"type": "boolean"},
            "boost_mode": {"type": "boolean"},
            "power_warning": {"type": "string"},
            "temperature": {"type": "integer"},
            "room_temperature": {"type": "integer"},
            "display": {"type": "string"},
            "holiday_mode": {"type": "boolean"},
            "holiday_start": {"type": "string"},
            "holiday_end": {"type": "string"},
            "mode": {"type": "string"},
            "default_temperature": {"type": "integer"},
            "schedules": {"type": "array", "items": {"$ref": "#/definitions/models.ScheduleEntry"}},
            "error_message": {"type": "string"},
            "welcome_message": {"type": "string"},
            "updated_at": {"type": "string"}
        }}
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Heating Controller API",
	Description:      "Home heating controller: power, boost, setpoint, holiday mode, schedules and fault reporting.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
