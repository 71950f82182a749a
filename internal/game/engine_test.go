package game

import "testing"

func TestResolveSamePlayIsTie(t *testing.T) {
	for _, play := range []string{Rock, Paper, Scissors} {
		if outcome := Resolve(play, play); outcome != Tie {
			t.Errorf("Expected tie for %s vs %s, got %v", play, play, outcome)
		}
	}
}

func TestResolveBeatsRelation(t *testing.T) {
	cases := []struct {
		play   string
		aiPlay string
		want   Outcome
	}{
		{Rock, Scissors, Win},
		{Scissors, Paper, Win},
		{Paper, Rock, Win},
		{Scissors, Rock, Loss},
		{Paper, Scissors, Loss},
		{Rock, Paper, Loss},
	}

	for _, c := range cases {
		if got := Resolve(c.play, c.aiPlay); got != c.want {
			t.Errorf("Resolve(%s, %s) = %v, want %v", c.play, c.aiPlay, got, c.want)
		}
	}
}

func TestResolveIsAntisymmetric(t *testing.T) {
	all := []string{Rock, Paper, Scissors}
	for _, a := range all {
		for _, b := range all {
			if a == b {
				continue
			}
			first := Resolve(a, b)
			second := Resolve(b, a)
			if first == Win && second != Loss || first == Loss && second != Win {
				t.Errorf("Resolve(%s, %s)=%v but Resolve(%s, %s)=%v", a, b, first, b, a, second)
			}
		}
	}
}

func TestValidPlay(t *testing.T) {
	for _, play := range []string{Rock, Paper, Scissors} {
		if !ValidPlay(play) {
			t.Errorf("Expected %s to be a valid play", play)
		}
	}
	for _, play := range []string{"lizard", "spock", "", "ROCK "} {
		if ValidPlay(play) {
			t.Errorf("Expected %s to be invalid", play)
		}
	}
}

func TestRandomPickerReturnsValidPlays(t *testing.T) {
	picker := NewRandomPicker()
	for i := 0; i < 50; i++ {
		if play := picker.Pick(); !ValidPlay(play) {
			t.Fatalf("Picker returned invalid play %q", play)
		}
	}
}
