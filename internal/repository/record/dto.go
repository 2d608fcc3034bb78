package record

import (
	"fmt"
	"strconv"
	"strings"

	domrec "github.com/kailas-cloud/studentnest/internal/domain/record"
)

func toHash(rec domrec.Record) map[string]string {
	fields := rec.Fields()
	out := make(map[string]string, len(fields)+2)
	out[fieldID] = rec.ID()
	out[fieldCreatedAt] = strconv.FormatInt(rec.CreatedAt(), 10)
	for k, v := range fields {
		out[userPrefix+k] = v
	}
	return out
}

func fromHash(collection, key string, h map[string]string) (domrec.Record, error) {
	id := h[fieldID]
	if id == "" {
		id = idFromKey(key)
	}

	var createdAt int64
	if raw, ok := h[fieldCreatedAt]; ok {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return domrec.Record{}, fmt.Errorf("parse %s of %s: %w", fieldCreatedAt, key, err)
		}
		createdAt = v
	}

	fields := make(map[string]string, len(h))
	for k, v := range h {
		if name, ok := strings.CutPrefix(k, userPrefix); ok {
			fields[name] = v
		}
	}

	return domrec.Reconstruct(id, collection, fields, createdAt), nil
}
