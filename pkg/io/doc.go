// Package io reads and writes the JSON files that surround a route run.
//
// # Lookup Table
//
// The lookup file is a JSON array of location records. Every field is a
// string, coordinates included:
//
//	[
//	  {
//	    "zip_code": "50309", "city": "Des Moines", "state": "IA",
//	    "latitude": "42.0", "longitude": "-93.5",
//	    "classification": "Midwest", "population": "214133"
//	  }
//	]
//
// The "state" field is the identifier used in routes. Use [ImportLookup] for
// a path or [ReadLookup] for any io.Reader.
//
// # Route Request
//
// The request file is a JSON array whose first element names the fixed
// endpoints:
//
//	[{"from_state": "IA", "to_state": "DC"}]
//
// # Distance Summary
//
// [ExportSummary] writes the start/end summary record produced once per run:
//
//	{
//	  "run_id": "6f1c…",
//	  "from_state": "IA", "from_zipcode": "50309",
//	  "to_state": "DC", "to_zipcode": "20001",
//	  "distance": "892.0", "unit": "mi",
//	  "created_at": "2026-10-18T09:30:00Z"
//	}
//
// # Errors
//
// A missing file is FILE_NOT_FOUND, other read or write failures are
// IO_ERROR, and malformed JSON or coordinates are PARSE_ERROR. Nothing is
// retried.
package io
