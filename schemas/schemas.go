// Package schemas embeds the JSON Schema documents for lookalike data artifacts.
package schemas

import _ "embed"

// AttributeRecord is the JSON Schema for attribute-record documents.
//
//go:embed attribute_record.schema.json
var AttributeRecord string
