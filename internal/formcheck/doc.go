// Package formcheck implements the formcheck command line tool, which runs
// form records from YAML or JSON files through the hangul form engine.
//
//	formcheck validate students.yaml guardians.json
//	cat record.json | formcheck validate - --output json
//	formcheck field phone "010 1234 5678"
//	formcheck fields
package formcheck
