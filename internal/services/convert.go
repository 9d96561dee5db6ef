package services

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

func int8From(v *int64) pgtype.Int8 {
	if v == nil {
		return pgtype.Int8{}
	}
	return pgtype.Int8{Int64: *v, Valid: true}
}

func uuidFrom(id uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: id, Valid: true}
}

func textFrom(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}
