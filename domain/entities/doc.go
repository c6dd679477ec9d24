// Package entities provides the core domain entities of the compliance checker.
// These are plain data types shared by the policy handlers, the compliance
// engine and whatever layer decodes SBOM and policy documents.
package entities
