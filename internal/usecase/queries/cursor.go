package queries

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"github.com/zhangwenhan0216/reservation/internal/pkg/errs"
)

const (
	CursorVersionV1 = "v1"
)

// EncodeCursor renders a keyset position as an opaque token.
func EncodeCursor(id int64) string {
	cursorData := fmt.Sprintf("%s:%d", CursorVersionV1, id)
	return base64.URLEncoding.EncodeToString([]byte(cursorData))
}

// DecodeCursor accepts both the opaque token and a bare decimal id.
// An empty cursor means "from the beginning" and decodes to 0. Malformed
// cursors are marked errs.ErrInvalidReservationID.
func DecodeCursor(cursor string) (int64, error) {
	if cursor == "" {
		return 0, nil
	}

	if decoded, err := base64.URLEncoding.DecodeString(cursor); err == nil {
		decodedStr := string(decoded)
		if strings.HasPrefix(decodedStr, CursorVersionV1+":") {
			return parseID(strings.TrimPrefix(decodedStr, CursorVersionV1+":"))
		}
	}

	return parseID(cursor)
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errs.Mark(errs.Wrapf(err, "invalid cursor %q", s), errs.ErrInvalidReservationID)
	}
	if id < 0 {
		return 0, errs.Mark(errs.Newf("invalid cursor: negative id %d", id), errs.ErrInvalidReservationID)
	}
	return id, nil
}
