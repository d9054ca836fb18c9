package domain

// Document is a schemaless content item (banner, plan, team member, gallery
// entry). The store assigns the identifier; beyond that the payload is
// whatever the client submitted. The "_id" key, when present, holds the hex
// form of the storage id.
type Document map[string]any

// ID returns the document's hex identifier, or "" when unset.
func (d Document) ID() string {
	id, _ := d["_id"].(string)
	return id
}

// InsertResult reports the identifier assigned on insert.
type InsertResult struct {
	InsertedID string `json:"insertedId"`
}

// UpdateResult mirrors the store's update outcome. UpsertedID is set only
// when the update created the document (upsert path).
type UpdateResult struct {
	MatchedCount  int64  `json:"matchedCount"`
	ModifiedCount int64  `json:"modifiedCount"`
	UpsertedID    string `json:"upsertedId,omitempty"`
}

// DeleteResult reports how many documents a delete removed. Deleting an
// absent id yields DeletedCount == 0, not an error.
type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}
