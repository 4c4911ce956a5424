package domain

import "encoding/json"

// Listing is the paginated collection envelope returned by the upstream API.
type Listing struct {
	Kind string      `json:"kind"`
	Data ListingData `json:"data"`
}

type ListingData struct {
	Children []Thing `json:"children"`
	After    *string `json:"after"`
	Before   *string `json:"before"`
	Dist     int     `json:"dist"`
}

// Thing wraps one upstream item. Raw keeps the exact bytes it was decoded from.
type Thing struct {
	Kind string          `json:"kind"`
	Data ThingData       `json:"data"`
	Raw  json.RawMessage `json:"-"`
}

type ThingData struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Author     string  `json:"author"`
	CreatedUTC float64 `json:"created_utc"`
	Permalink  string  `json:"permalink"`
	Subreddit  string  `json:"subreddit"`
}

func (t *Thing) UnmarshalJSON(b []byte) error {
	type plain Thing
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*t = Thing(p)
	t.Raw = append(json.RawMessage(nil), b...)
	return nil
}

func (t Thing) MarshalJSON() ([]byte, error) {
	if len(t.Raw) > 0 {
		return t.Raw, nil
	}
	type plain Thing
	return json.Marshal(plain(t))
}
