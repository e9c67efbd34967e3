package export

// schemaJSON is the JSON Schema every bundle is validated against before
// decoding. It pins the required fields and the closed enums; timestamps
// stay plain strings because the platform's format varies (see
// replay.ParseTimestamp).
const schemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["session"],
  "properties": {
    "session": {
      "type": "object",
      "required": ["session_id", "lesson_id", "started_at"],
      "properties": {
        "session_id": {"type": "string", "minLength": 1},
        "lesson_id": {"type": "string", "minLength": 1},
        "status": {"type": "string"},
        "started_at": {"type": "string", "minLength": 1},
        "completed_at": {"type": "string"},
        "duration_ms": {"type": "integer", "minimum": 0}
      }
    },
    "code_snapshots": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["created_at", "task_index", "code_content"],
        "properties": {
          "created_at": {"type": "string", "minLength": 1},
          "task_index": {"type": "integer", "minimum": 0},
          "method_id": {"type": "string"},
          "code_content": {"type": "string"}
        }
      }
    },
    "navigation_events": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["created_at", "from_task_index", "to_task_index"],
        "properties": {
          "created_at": {"type": "string", "minLength": 1},
          "from_task_index": {"type": "integer", "minimum": 0},
          "to_task_index": {"type": "integer", "minimum": 0},
          "navigation_direction": {"type": "string"}
        }
      }
    },
    "strokes": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["created_at"],
        "properties": {
          "created_at": {"type": "string", "minLength": 1},
          "task": {"type": "string"},
          "zone": {"type": "string"},
          "stroke_number": {"type": "integer"},
          "points": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["x", "y"],
              "properties": {
                "x": {"type": "number"},
                "y": {"type": "number"}
              }
            }
          }
        }
      }
    },
    "test_results": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["created_at", "task_index", "test_case_index", "passed"],
        "properties": {
          "created_at": {"type": "string", "minLength": 1},
          "task_index": {"type": "integer", "minimum": 0},
          "method_id": {"type": "string"},
          "test_case_index": {"type": "integer", "minimum": 0},
          "passed": {"type": "boolean"},
          "error_message": {"type": "string"}
        }
      }
    },
    "code_errors": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["created_at", "task_index", "error_message"],
        "properties": {
          "created_at": {"type": "string", "minLength": 1},
          "task_index": {"type": "integer", "minimum": 0},
          "error_message": {"type": "string"}
        }
      }
    },
    "task_progress": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["created_at", "task_index", "completed"],
        "properties": {
          "created_at": {"type": "string", "minLength": 1},
          "task_index": {"type": "integer", "minimum": 0},
          "completed": {"type": "boolean"},
          "attempts": {"type": "integer", "minimum": 0},
          "test_cases_passed": {"type": "integer", "minimum": 0},
          "total_test_cases": {"type": "integer", "minimum": 0}
        }
      }
    },
    "panel_events": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["created_at", "current_task_index", "interaction_type"],
        "properties": {
          "created_at": {"type": "string", "minLength": 1},
          "current_task_index": {"type": "integer", "minimum": 0},
          "interaction_type": {"enum": ["open", "close"]}
        }
      }
    },
    "conversations": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["conversation_id", "start_time"],
        "properties": {
          "conversation_id": {"type": "string", "minLength": 1},
          "start_time": {"type": "string", "minLength": 1},
          "end_time": {"type": "string"}
        }
      }
    },
    "tutor_highlights": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["highlighted_at", "line_number"],
        "properties": {
          "highlighted_at": {"type": "string", "minLength": 1},
          "line_number": {"type": "integer", "minimum": 0}
        }
      }
    },
    "user_highlights": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["highlighted_at", "highlighted_text"],
        "properties": {
          "highlighted_at": {"type": "string", "minLength": 1},
          "highlighted_text": {"type": "string"}
        }
      }
    },
    "messages": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["created_at", "role", "content"],
        "properties": {
          "created_at": {"type": "string", "minLength": 1},
          "role": {"enum": ["user", "assistant"]},
          "content": {"type": "string"}
        }
      }
    },
    "lesson": {
      "type": "object",
      "required": ["lesson_id", "tasks"],
      "properties": {
        "lesson_id": {"type": "string", "minLength": 1},
        "tasks": {
          "type": "array",
          "items": {
            "type": "object",
            "required": ["title"],
            "properties": {
              "title": {"type": "string", "minLength": 1},
              "difficulty": {"type": "string"},
              "description": {"type": "string"},
              "method_name": {"type": "string"},
              "starter_code": {"type": "string"},
              "examples": {
                "type": "array",
                "items": {
                  "type": "object",
                  "required": ["input", "output"],
                  "properties": {
                    "input": {"type": "string"},
                    "output": {"type": "string"}
                  }
                }
              }
            }
          }
        }
      }
    }
  }
}`
