// Command nooros runs the NoorOS desktop backend.
//
// Usage:
//
//	nooros serve [--port 8000] [--storage sqlite --storage-path data/nooros.db] [--dev]
//	nooros reset [--storage sqlite --storage-path data/nooros.db]
//
// Settings come from environment variables (PORT, STORAGE_BACKEND,
// OPENAI_API_KEY, ...); flags override them.
package main
