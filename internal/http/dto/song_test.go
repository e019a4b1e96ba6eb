package dto

import "testing"

func strPtr(s string) *string { return &s }

func TestSongUpdateRequest_ToUpdates(t *testing.T) {
	tests := []struct {
		name     string
		req      SongUpdateRequest
		expected map[string]interface{}
	}{
		{
			name:     "all nil",
			req:      SongUpdateRequest{},
			expected: map[string]interface{}{},
		},
		{
			name: "only artist",
			req:  SongUpdateRequest{Artist: strPtr("New Artist")},
			expected: map[string]interface{}{
				"artist": "New Artist",
			},
		},
		{
			name: "all fields",
			req: SongUpdateRequest{
				SongName: strPtr("Name"),
				Artist:   strPtr("Artist"),
				Album:    strPtr("Album"),
			},
			expected: map[string]interface{}{
				"name":   "Name",
				"artist": "Artist",
				"album":  "Album",
			},
		},
		{
			name: "empty strings skipped",
			req: SongUpdateRequest{
				SongName: strPtr(""),
				Artist:   strPtr("Artist"),
			},
			expected: map[string]interface{}{
				"artist": "Artist",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			updates := tt.req.ToUpdates()
			if len(updates) != len(tt.expected) {
				t.Fatalf("Expected %d updates, got %d: %v", len(tt.expected), len(updates), updates)
			}
			for k, v := range tt.expected {
				if updates[k] != v {
					t.Errorf("Expected %s=%v, got %v", k, v, updates[k])
				}
			}
		})
	}
}
