// Package docs регистрирует OpenAPI-описание для /swagger/*.
// Сгенерировано swag init; после изменения аннотаций хендлеров перегенерировать.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/route/{start_lng}/{start_lat}/{end_lng}/{end_lat}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Route"
                ],
                "summary": "Велосипедный маршрут между двумя точками",
                "parameters": [
                    {
                        "type": "number",
                        "name": "start_lng",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "number",
                        "name": "start_lat",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "number",
                        "name": "end_lng",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "number",
                        "name": "end_lat",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "name": "format",
                        "in": "query",
                        "required": false
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.RouteResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/segment/select/{way_id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Segment"
                ],
                "summary": "Выбор участка",
                "parameters": [
                    {
                        "type": "integer",
                        "name": "way_id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.SegmentResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/segment/route/{way_id}/{way_ids}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Segment"
                ],
                "summary": "Расширение участка",
                "parameters": [
                    {
                        "type": "integer",
                        "name": "way_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "name": "way_ids",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.MergeResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/scores/current/{way_ids}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Scores"
                ],
                "summary": "Текущие оценки участков",
                "parameters": [
                    {
                        "type": "string",
                        "name": "way_ids",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.CurrentScoresResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/scores/history/{way_ids}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Scores"
                ],
                "summary": "История отчётов",
                "parameters": [
                    {
                        "type": "string",
                        "name": "way_ids",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ScoreHistoryResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/scores/recent/{min_lng}/{min_lat}/{max_lng}/{max_lat}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Scores"
                ],
                "summary": "Последние отчёты в области карты",
                "parameters": [
                    {
                        "type": "number",
                        "name": "min_lng",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "number",
                        "name": "min_lat",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "number",
                        "name": "max_lng",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "number",
                        "name": "max_lat",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ScoreHistoryResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/scores/aggregate/{way_id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Scores"
                ],
                "summary": "Средняя оценка участка",
                "parameters": [
                    {
                        "type": "integer",
                        "name": "way_id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.AggregateScoreResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/scores": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Scores"
                ],
                "summary": "Новый отчёт об участках",
                "parameters": [
                    {
                        "description": "Отчёт",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.SubmitScoreRequest"
                        }
                    }
                ],
                "responses": {
                    "202": {
                        "description": "Accepted",
                        "schema": {
                            "$ref": "#/definitions/dto.SubmitScoreResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/stats": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Stats"
                ],
                "summary": "Статистика сети",
                "parameters": [
                    {
                        "type": "boolean",
                        "name": "refresh",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.NetworkStats"
                        }
                    }
                }
            }
        },
        "/api/v1/health": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Health"
                ],
                "summary": "Проверка состояния",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "503": {
                        "description": "Service Unavailable"
                    }
                }
            }
        }
    },
    "definitions": {
        "domain.NetworkStats": {
            "type": "object",
            "properties": {
                "network": {
                    "type": "object"
                },
                "scores": {
                    "type": "object"
                },
                "coverage": {
                    "type": "object"
                },
                "last_updated": {
                    "type": "string"
                }
            }
        },
        "dto.RouteResponse": {
            "type": "object",
            "properties": {
                "geometry": {
                    "type": "array",
                    "items": {
                        "type": "array",
                        "items": {
                            "type": "number"
                        }
                    }
                },
                "total_length_km": {
                    "type": "number"
                },
                "way_ids": {
                    "type": "array",
                    "items": {
                        "type": "integer"
                    }
                },
                "polyline": {
                    "type": "string"
                },
                "error": {
                    "type": "string"
                }
            }
        },
        "dto.SegmentResponse": {
            "type": "object",
            "properties": {
                "way_id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "geometry": {
                    "type": "array",
                    "items": {
                        "type": "array",
                        "items": {
                            "type": "number"
                        }
                    }
                },
                "source": {
                    "type": "integer"
                },
                "target": {
                    "type": "integer"
                },
                "score": {
                    "$ref": "#/definitions/dto.ScoreView"
                },
                "error": {
                    "type": "string"
                }
            }
        },
        "dto.MergeResponse": {
            "type": "object",
            "properties": {
                "way_ids": {
                    "type": "array",
                    "items": {
                        "type": "integer"
                    }
                },
                "geometry": {
                    "type": "array",
                    "items": {
                        "type": "array",
                        "items": {
                            "type": "number"
                        }
                    }
                },
                "source": {
                    "type": "integer"
                },
                "target": {
                    "type": "integer"
                },
                "error": {
                    "type": "string"
                }
            }
        },
        "dto.ScoreView": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "score": {
                    "type": "number"
                },
                "rated": {
                    "type": "boolean"
                },
                "comment": {
                    "type": "string"
                },
                "way_ids": {
                    "type": "array",
                    "items": {
                        "type": "integer"
                    }
                },
                "created_at": {
                    "type": "string"
                },
                "photo_path": {
                    "type": "string"
                },
                "photo_path_thumbnail": {
                    "type": "string"
                }
            }
        },
        "dto.WayScore": {
            "type": "object",
            "properties": {
                "way_id": {
                    "type": "integer"
                },
                "score": {
                    "$ref": "#/definitions/dto.ScoreView"
                }
            }
        },
        "dto.CurrentScoresResponse": {
            "type": "object",
            "properties": {
                "scores": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.WayScore"
                    }
                }
            }
        },
        "dto.ScoreHistoryResponse": {
            "type": "object",
            "properties": {
                "reports": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.ScoreView"
                    }
                },
                "total": {
                    "type": "integer"
                }
            }
        },
        "dto.AggregateScoreResponse": {
            "type": "object",
            "properties": {
                "way_id": {
                    "type": "integer"
                },
                "score": {
                    "type": "number"
                },
                "rated": {
                    "type": "boolean"
                },
                "report_count": {
                    "type": "integer"
                }
            }
        },
        "dto.SubmitScoreRequest": {
            "type": "object",
            "properties": {
                "score": {
                    "type": "number"
                },
                "comment": {
                    "type": "string"
                },
                "way_ids": {
                    "type": "array",
                    "items": {
                        "type": "integer"
                    }
                },
                "photo_path": {
                    "type": "string"
                },
                "photo_path_thumbnail": {
                    "type": "string"
                }
            }
        },
        "dto.SubmitScoreResponse": {
            "type": "object",
            "properties": {
                "event_id": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                }
            }
        },
        "utils.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "object",
                    "properties": {
                        "code": {
                            "type": "string"
                        },
                        "message": {
                            "type": "string"
                        },
                        "details": {
                            "type": "object"
                        }
                    }
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Cycleroute Microservice API",
	Description:      "Велосипедная навигация по графу улиц OpenStreetMap с учётом инфраструктуры и оценок сообщества.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
