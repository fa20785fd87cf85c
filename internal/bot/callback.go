package bot

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	actionMenu    = "menu"
	actionMessage = "message"

	callbackPrefix = "b"
)

// callbackData is the structured payload packed into inline button
// callbacks as "b:<action>:<item>:<page>" with empty unused slots.
type callbackData struct {
	Action string
	ItemID uint
	Page   int
}

func (d callbackData) pack() string {
	item := ""
	if d.ItemID != 0 {
		item = strconv.FormatUint(uint64(d.ItemID), 10)
	}
	page := ""
	if d.Page != 0 {
		page = strconv.Itoa(d.Page)
	}
	return strings.Join([]string{callbackPrefix, d.Action, item, page}, ":")
}

func parseCallback(data string) (callbackData, error) {
	parts := strings.Split(data, ":")
	if len(parts) != 4 || parts[0] != callbackPrefix {
		return callbackData{}, fmt.Errorf("malformed callback data %q", data)
	}

	parsed := callbackData{Action: parts[1]}
	if parts[2] != "" {
		id, err := strconv.ParseUint(parts[2], 10, 64)
		if err != nil {
			return callbackData{}, fmt.Errorf("malformed callback item id %q", parts[2])
		}
		parsed.ItemID = uint(id)
	}
	if parts[3] != "" {
		page, err := strconv.Atoi(parts[3])
		if err != nil {
			return callbackData{}, fmt.Errorf("malformed callback page %q", parts[3])
		}
		parsed.Page = page
	}
	return parsed, nil
}
