package deck

import "fmt"

// Notation returns the 169-combo starting-hand notation for two hole cards:
// "AA" for pairs, "AKs" for suited hands, "72o" for offsuit hands. The
// higher rank always comes first.
func Notation(a, b Card) string {
	high, low := a.Rank, b.Rank
	if low > high {
		high, low = low, high
	}

	if high == low {
		return high.String() + low.String()
	}
	if a.Suit == b.Suit {
		return high.String() + low.String() + "s"
	}
	return high.String() + low.String() + "o"
}

// ParseNotation decodes a starting-hand notation back into its components.
func ParseNotation(s string) (high, low Rank, suited bool, err error) {
	if len(s) != 2 && len(s) != 3 {
		return 0, 0, false, fmt.Errorf("invalid hand notation %q", s)
	}

	high, err = parseRankChar(s[0])
	if err != nil {
		return 0, 0, false, fmt.Errorf("invalid hand notation %q: %w", s, err)
	}
	low, err = parseRankChar(s[1])
	if err != nil {
		return 0, 0, false, fmt.Errorf("invalid hand notation %q: %w", s, err)
	}
	if low > high {
		return 0, 0, false, fmt.Errorf("invalid hand notation %q: high rank must come first", s)
	}

	switch {
	case len(s) == 2:
		if high != low {
			return 0, 0, false, fmt.Errorf("invalid hand notation %q: unsuited hands need an s/o marker", s)
		}
		return high, low, false, nil
	case s[2] == 's':
		if high == low {
			return 0, 0, false, fmt.Errorf("invalid hand notation %q: pairs cannot be suited", s)
		}
		return high, low, true, nil
	case s[2] == 'o':
		return high, low, false, nil
	default:
		return 0, 0, false, fmt.Errorf("invalid hand notation %q: marker must be s or o", s)
	}
}

// AllNotations enumerates all 169 starting-hand notations, pairs first
// within each high rank, then suited, then offsuit.
func AllNotations() []string {
	notations := make([]string, 0, 169)
	for high := Ace; high >= Two; high-- {
		for low := high; low >= Two; low-- {
			if high == low {
				notations = append(notations, high.String()+low.String())
				continue
			}
			notations = append(notations, high.String()+low.String()+"s")
			notations = append(notations, high.String()+low.String()+"o")
		}
	}
	return notations
}

func parseRankChar(c byte) (Rank, error) {
	switch c {
	case '2', '3', '4', '5', '6', '7', '8', '9':
		return Rank(c - '0'), nil
	case 'T':
		return Ten, nil
	case 'J':
		return Jack, nil
	case 'Q':
		return Queen, nil
	case 'K':
		return King, nil
	case 'A':
		return Ace, nil
	default:
		return 0, fmt.Errorf("invalid rank character %q", c)
	}
}
