package record

import "strings"

// Hash layout: reserved metadata fields are prefixed with "_", user fields with "f:".
const (
	fieldID        = "_id"
	fieldCreatedAt = "_created_at"
	userPrefix     = "f:"
)

func recordKey(prefix, collection, id string) string {
	return prefix + "record:" + collection + ":" + id
}

func collectionPattern(prefix, collection string) string {
	return prefix + "record:" + collection + ":*"
}

func idFromKey(key string) string {
	if i := strings.LastIndexByte(key, ':'); i >= 0 {
		return key[i+1:]
	}
	return key
}
