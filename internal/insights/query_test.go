package insights

import "testing"

func queryPivot() *Pivot {
	return BuildPivot([]Record{
		rec(2019, 1, "Midnight Drive", "Artist X"),
		rec(2019, 2, "Morning Light", "Artist Y", "Artist X"),
		rec(2020, 1, "Morning Light", "Artist Y", "Artist X"),
		rec(2020, 2, "Evening Song", "Artist Z"),
	})
}

func TestByArtist(t *testing.T) {
	p := queryPivot()

	rows := ByArtist(p, "artist x")
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows for Artist X, got %d", len(rows))
	}

	if rows := ByArtist(p, "Artist Z"); len(rows) != 1 || rows[0].Title != "Evening Song" {
		t.Errorf("expected just Evening Song for Artist Z, got %d rows", len(rows))
	}
	if rows := ByArtist(p, "Nobody"); len(rows) != 0 {
		t.Errorf("expected no rows for unknown artist, got %d", len(rows))
	}
	if rows := ByArtist(p, ""); len(rows) != 0 {
		t.Errorf("expected no rows for empty artist, got %d", len(rows))
	}
}

func TestByTitle(t *testing.T) {
	p := queryPivot()

	if rows := ByTitle(p, "morning"); len(rows) != 1 || rows[0].Title != "Morning Light" {
		t.Errorf("expected Morning Light for substring match, got %d rows", len(rows))
	}
	if rows := ByTitle(p, "ing"); len(rows) != 2 {
		t.Errorf("expected 2 rows for 'ing', got %d", len(rows))
	}
}

func TestYearList(t *testing.T) {
	p := queryPivot()

	list := YearList(p, 2020)
	if len(list) != 2 {
		t.Fatalf("expected 2 entries for 2020, got %d", len(list))
	}
	if list[0].Rank != 1 || list[0].Title != "Morning Light" {
		t.Errorf("first entry = %q at rank %d, want Morning Light at 1", list[0].Title, list[0].Rank)
	}
	if list[1].Rank != 2 || list[1].Title != "Evening Song" {
		t.Errorf("second entry = %q at rank %d, want Evening Song at 2", list[1].Title, list[1].Rank)
	}

	if list := YearList(p, 1999); len(list) != 0 {
		t.Errorf("expected empty list for unobserved year, got %d", len(list))
	}
}
