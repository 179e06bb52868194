// Package services holds the application core behind the driving ports.
// The session service builds a chain from a document and an LLM client,
// the conversation service runs chat turns over the shared session store,
// the content service turns sources into documents through the loaders,
// and the settings service reads and writes persisted configuration.
//
// Services depend only on the domain and the port interfaces; adapters
// are injected at the composition root.
package services
