// Package schema declares the request bodies accepted by the API and turns
// them into domain inputs. Bodies are decoded from JSON, checked with
// go-playground/validator, and every violation is reported at once in a
// ValidationError keyed by JSON field name.
package schema
