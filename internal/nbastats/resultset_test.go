package nbastats

import (
	"encoding/json"
	"testing"
)

// sampleEnvelope mimics the wire shape of a dash endpoint: named result
// sets, uppercase headers, heterogeneous cells with the odd null.
const sampleEnvelope = `{
	"resource": "leaguedashplayerclutch",
	"resultSets": [
		{
			"name": "LeagueDashPlayerClutch",
			"headers": ["PLAYER_ID", "PLAYER_NAME", "GP", "FG_PCT", "AST_PCT"],
			"rowSet": [
				[201939, "Stephen Curry", 58, 0.483, null],
				[2544, "LeBron James", 61, 0.512, 0.31]
			]
		},
		{
			"name": "SecondarySet",
			"headers": ["PLAYER_ID"],
			"rowSet": [[1]]
		}
	]
}`

func decodeSample(t *testing.T) *Response {
	t.Helper()
	var resp Response
	if err := json.Unmarshal([]byte(sampleEnvelope), &resp); err != nil {
		t.Fatalf("unmarshal sample: %v", err)
	}
	return &resp
}

// TestTableLookup checks named result-set selection and the
// first-set fallback.
func TestTableLookup(t *testing.T) {
	resp := decodeSample(t)

	tbl, err := resp.Table("SecondarySet")
	if err != nil {
		t.Fatalf("Table: %v", err)
	}
	if tbl.Name != "SecondarySet" {
		t.Errorf("want named set, got %q", tbl.Name)
	}

	tbl, err = resp.Table("NoSuchSet")
	if err != nil {
		t.Fatalf("Table fallback: %v", err)
	}
	if tbl.Name != "LeagueDashPlayerClutch" {
		t.Errorf("want fallback to first set, got %q", tbl.Name)
	}

	empty := &Response{Resource: "empty"}
	if _, err := empty.Table("Anything"); err == nil {
		t.Error("want error for response without result sets, got nil")
	}
}

// TestRowAccessors checks the typed getters against numeric, string,
// null, and absent cells.
func TestRowAccessors(t *testing.T) {
	resp := decodeSample(t)
	tbl, err := resp.Table("LeagueDashPlayerClutch")
	if err != nil {
		t.Fatalf("Table: %v", err)
	}
	if tbl.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", tbl.Len())
	}

	r := tbl.Row(0)
	if got := r.Int("PLAYER_ID"); got != 201939 {
		t.Errorf("Int(PLAYER_ID) = %d, want 201939", got)
	}
	if got := r.Str("PLAYER_NAME"); got != "Stephen Curry" {
		t.Errorf("Str(PLAYER_NAME) = %q", got)
	}
	if got := r.Float("FG_PCT"); got != 0.483 {
		t.Errorf("Float(FG_PCT) = %v, want 0.483", got)
	}
	if v := r.MaybeFloat("AST_PCT"); v != nil {
		t.Errorf("MaybeFloat on null cell = %v, want nil", *v)
	}
	if v := r.MaybeFloat("NO_SUCH_COLUMN"); v != nil {
		t.Errorf("MaybeFloat on absent column = %v, want nil", *v)
	}
	if got := r.Float("NO_SUCH_COLUMN"); got != 0 {
		t.Errorf("Float on absent column = %v, want 0", got)
	}
	if got := r.Str("GP"); got != "58" {
		t.Errorf("Str on numeric cell = %q, want \"58\"", got)
	}

	if !tbl.HasColumn("AST_PCT") {
		t.Error("HasColumn(AST_PCT) = false, want true")
	}
	if tbl.HasColumn("USG_PCT") {
		t.Error("HasColumn(USG_PCT) = true, want false")
	}
}

// TestColumnOrderIndependence rebuilds the same table with the columns
// permuted and expects identical values from the name-based getters.
func TestColumnOrderIndependence(t *testing.T) {
	shuffled := ResultSet{
		Name:    "LeagueDashPlayerClutch",
		Headers: []string{"FG_PCT", "PLAYER_ID", "PLAYER_NAME"},
		RowSet:  [][]interface{}{{0.483, float64(201939), "Stephen Curry"}},
	}
	tbl := newTable(shuffled)

	r := tbl.Row(0)
	if got := r.Int("PLAYER_ID"); got != 201939 {
		t.Errorf("Int(PLAYER_ID) = %d, want 201939", got)
	}
	if got := r.Float("FG_PCT"); got != 0.483 {
		t.Errorf("Float(FG_PCT) = %v, want 0.483", got)
	}
}

// TestFindFloat checks row lookup by numeric identifier.
func TestFindFloat(t *testing.T) {
	resp := decodeSample(t)
	tbl, err := resp.Table("LeagueDashPlayerClutch")
	if err != nil {
		t.Fatalf("Table: %v", err)
	}

	row, ok := tbl.FindFloat("PLAYER_ID", 2544)
	if !ok {
		t.Fatal("FindFloat: player 2544 not found")
	}
	if got := row.Str("PLAYER_NAME"); got != "LeBron James" {
		t.Errorf("found wrong row: %q", got)
	}

	if _, ok := tbl.FindFloat("PLAYER_ID", 99999); ok {
		t.Error("FindFloat: want miss for unknown ID")
	}
}
