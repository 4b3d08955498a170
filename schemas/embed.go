// Package schemas embeds the JSON Schema documents shipped with the service.
package schemas

import _ "embed"

// CandidateRecord is the schema the request validator applies to the "data"
// field of a customization request.
//
//go:embed candidate_record.schema.json
var CandidateRecord string
