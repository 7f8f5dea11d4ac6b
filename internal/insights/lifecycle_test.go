package insights

import "testing"

func TestDreamRunsReportsSpikeThenDisappearance(t *testing.T) {
	p := BuildPivot([]Record{
		rec(2019, 8, "Spike", "Artist X"),
		rec(2019, 8, "Survivor", "Artist Y"),
		rec(2020, 2, "Survivor", "Artist Y"),
		rec(2019, 50, "Low Rank", "Artist Z"),
	})

	runs := DreamRuns(p, DefaultDreamRunTop)
	if len(runs) != 1 {
		t.Fatalf("expected 1 dream run, got %d", len(runs))
	}
	if runs[0].Title != "Spike" {
		t.Errorf("dream run track = %q, want %q", runs[0].Title, "Spike")
	}
	if runs[0].DreamYear != 2019 || runs[0].DreamRank != 8 {
		t.Errorf("dream run = %d at rank %d, want 2019 at 8", runs[0].DreamYear, runs[0].DreamRank)
	}
}

func TestDreamRunsOnlyFirstQualifyingYear(t *testing.T) {
	// Spikes in 2018 and again in 2020; only 2018 is reported.
	p := BuildPivot([]Record{
		rec(2018, 5, "Repeat Spike", "Artist X"),
		rec(2020, 3, "Repeat Spike", "Artist X"),
		rec(2019, 1, "Filler", "Artist F"),
		rec(2021, 1, "Filler", "Artist F"),
	})

	runs := DreamRuns(p, 10)
	var got []DreamRun
	for _, r := range runs {
		if r.Title == "Repeat Spike" {
			got = append(got, r)
		}
	}
	if len(got) != 1 {
		t.Fatalf("expected exactly 1 dream run for the row, got %d", len(got))
	}
	if got[0].DreamYear != 2018 {
		t.Errorf("dream year = %d, want first qualifying year 2018", got[0].DreamYear)
	}
}

func TestDreamRunsComparesObservedAdjacency(t *testing.T) {
	// Observed years are 2018 and 2021; the gap is not treated as an
	// absence in between.
	p := BuildPivot([]Record{
		rec(2018, 4, "Gap Track", "Artist X"),
		rec(2021, 9, "Gap Track", "Artist X"),
	})

	if runs := DreamRuns(p, 10); len(runs) != 0 {
		t.Errorf("expected no dream runs across a year gap with both ends present, got %d", len(runs))
	}
}

func TestDreamRunsEmptyPivot(t *testing.T) {
	if runs := DreamRuns(BuildPivot(nil), 10); len(runs) != 0 {
		t.Errorf("expected no dream runs for empty input, got %d", len(runs))
	}
}

func TestOnTheUpClimbed(t *testing.T) {
	p := BuildPivot([]Record{
		rec(2019, 5, "Climber", "Artist X"),
		rec(2020, 3, "Climber", "Artist X"),
	})

	out := OnTheUp(p)
	if len(out) != 1 {
		t.Fatalf("expected 1 recovery, got %d", len(out))
	}
	r := out[0]
	if r.Type != RecoveryClimbed {
		t.Errorf("type = %q, want %q", r.Type, RecoveryClimbed)
	}
	if r.RecoveryYear != 2020 || r.PreviousRank != 5 || r.NewRank != 3 {
		t.Errorf("recovery = year %d from %d to %d, want 2020 from 5 to 3", r.RecoveryYear, r.PreviousRank, r.NewRank)
	}
}

func TestOnTheUpReturned(t *testing.T) {
	p := BuildPivot([]Record{
		rec(2019, 5, "Comeback", "Artist X"),
		rec(2021, 3, "Comeback", "Artist X"),
		rec(2020, 1, "Filler", "Artist F"),
	})

	out := OnTheUp(p)
	var got *Recovery
	for i := range out {
		if out[i].Title == "Comeback" {
			got = &out[i]
		}
	}
	if got == nil {
		t.Fatal("expected Comeback to be reported")
	}
	if got.Type != RecoveryReturned {
		t.Errorf("type = %q, want %q", got.Type, RecoveryReturned)
	}
	if got.RecoveryYear != 2021 {
		t.Errorf("recovery year = %d, want 2021", got.RecoveryYear)
	}
}

func TestOnTheUpExcludesWorsenedAndSingleAppearance(t *testing.T) {
	p := BuildPivot([]Record{
		rec(2019, 3, "Faded", "Artist X"),
		rec(2020, 5, "Faded", "Artist X"),
		rec(2019, 1, "One Off", "Artist Y"),
	})

	if out := OnTheUp(p); len(out) != 0 {
		t.Errorf("expected no recoveries, got %d", len(out))
	}
}

func TestOnTheUpOnlyFirstTransition(t *testing.T) {
	p := BuildPivot([]Record{
		rec(2018, 9, "Yo-yo", "Artist X"),
		rec(2019, 2, "Yo-yo", "Artist X"),
		rec(2021, 1, "Yo-yo", "Artist X"),
		rec(2020, 1, "Filler", "Artist F"),
	})

	var got []Recovery
	for _, r := range OnTheUp(p) {
		if r.Title == "Yo-yo" {
			got = append(got, r)
		}
	}
	if len(got) != 1 {
		t.Fatalf("expected exactly 1 recovery per row, got %d", len(got))
	}
	if got[0].RecoveryYear != 2019 || got[0].Type != RecoveryClimbed {
		t.Errorf("recovery = %q in %d, want climbed in 2019", got[0].Type, got[0].RecoveryYear)
	}
}

func TestActiveStreaks(t *testing.T) {
	p := BuildPivot([]Record{
		rec(2019, 1, "Steady", "Artist X"),
		rec(2020, 2, "Steady", "Artist X"),
		rec(2021, 3, "Steady", "Artist X"),
		rec(2020, 4, "Late Bloomer", "Artist Y"),
		rec(2021, 5, "Late Bloomer", "Artist Y"),
		rec(2019, 6, "Ancient", "Artist Z"),
	})

	streaks := ActiveStreaks(p, 3)
	if len(streaks) != 1 {
		t.Fatalf("expected 1 streak, got %d", len(streaks))
	}
	if streaks[0].Title != "Steady" || streaks[0].StreakLength != 3 || streaks[0].StreakStartYear != 2019 {
		t.Errorf("streak = %q len %d from %d, want Steady len 3 from 2019",
			streaks[0].Title, streaks[0].StreakLength, streaks[0].StreakStartYear)
	}

	if streaks := ActiveStreaks(p, 2); len(streaks) != 2 {
		t.Errorf("expected 2 streaks with min 2, got %d", len(streaks))
	}
}

func TestActiveStreaksRequiresLatestYear(t *testing.T) {
	p := BuildPivot([]Record{
		rec(2018, 1, "Broken", "Artist X"),
		rec(2019, 2, "Broken", "Artist X"),
		rec(2020, 3, "Broken", "Artist X"),
		rec(2021, 1, "Filler", "Artist F"),
	})

	if streaks := ActiveStreaks(p, 3); len(streaks) != 0 {
		t.Errorf("expected no streaks for tracks absent in the latest year, got %d", len(streaks))
	}
}

func TestOneTimers(t *testing.T) {
	p := BuildPivot([]Record{
		rec(2019, 5, "Once", "Artist X"),
		rec(2019, 1, "Twice", "Artist Y"),
		rec(2020, 2, "Twice", "Artist Y"),
		rec(2020, 7, "Also Once", "Artist Z"),
	})

	out := OneTimers(p)
	if len(out) != 2 {
		t.Fatalf("expected 2 one-timers, got %d", len(out))
	}
	// Most recent appearance first.
	if out[0].Title != "Also Once" || out[0].AppearanceYear != 2020 {
		t.Errorf("first one-timer = %q in %d, want Also Once in 2020", out[0].Title, out[0].AppearanceYear)
	}
	if out[1].Title != "Once" || out[1].AppearanceYear != 2019 {
		t.Errorf("second one-timer = %q in %d, want Once in 2019", out[1].Title, out[1].AppearanceYear)
	}
}
