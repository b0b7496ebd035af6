// Package mongo connects to MongoDB and stores cart snapshots as documents
// keyed by cart key, expired by a TTL index.
package mongo
