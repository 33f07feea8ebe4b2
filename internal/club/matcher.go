package club

import (
	"context"
	"sort"
	"strings"
	"unicode"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/cribbage-board/internal/cribbage"
)

const (
	autoMatchConfidence = 0.8
	minimumConfidence   = 0.3
	maxSuggestions      = 5
)

// PlayerMatcher resolves free text typed in Slack to a player.
type PlayerMatcher struct {
	store ClubStore
}

// NewPlayerMatcher creates a new player matcher.
func NewPlayerMatcher(store ClubStore) *PlayerMatcher {
	return &PlayerMatcher{store: store}
}

// FindPlayer returns the player the query names. When no player is a confident
// match it returns ranked suggestions instead.
func (pm *PlayerMatcher) FindPlayer(ctx context.Context, query string) (*cribbage.Player, []PlayerSuggestion, error) {
	players, err := pm.store.GetAllPlayers(ctx)
	if err != nil {
		return nil, nil, err
	}

	suggestions := rankPlayers(query, players)
	if len(suggestions) == 0 {
		log.Info("No player matches query", "query", query)
		return nil, nil, nil
	}

	top := suggestions[0]
	unique := len(suggestions) == 1 || suggestions[1].Confidence < top.Confidence
	if top.Confidence > autoMatchConfidence && unique {
		log.Info("Matched player", "query", query, "player", top.Player.Name(), "confidence", top.Confidence)
		return &top.Player, nil, nil
	}
	return nil, suggestions, nil
}

// rankPlayers scores every player against the query, best first.
func rankPlayers(query string, players []cribbage.Player) []PlayerSuggestion {
	q := normalizeName(query)
	if q == "" {
		return nil
	}

	var suggestions []PlayerSuggestion
	for _, player := range players {
		name := normalizeName(player.Name())
		score := similarity(q, name)
		if score > minimumConfidence {
			suggestions = append(suggestions, PlayerSuggestion{
				Player:     player,
				Confidence: score,
				Reasons:    matchReasons(q, name),
			})
		}
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Confidence > suggestions[j].Confidence
	})
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}

// similarity combines whole-name edit distance, per-token matching and the
// first-name shortcut ("morten" for "Morten Voss").
func similarity(query, name string) float64 {
	if query == name {
		return 1.0
	}
	scores := []float64{stringSimilarity(query, name), tokenSimilarity(query, name)}
	best := 0.0
	for _, s := range scores {
		best += s
	}
	best /= float64(len(scores))

	if first, _, _ := strings.Cut(name, " "); first == query {
		best = max(best, 0.9)
	}
	return best
}

func normalizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))

	var result strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsSpace(r) {
			result.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(result.String()), " ")
}

func stringSimilarity(s1, s2 string) float64 {
	if s1 == s2 {
		return 1.0
	}
	if s1 == "" || s2 == "" {
		return 0.0
	}
	r1, r2 := []rune(s1), []rune(s2)
	maxLen := max(len(r1), len(r2))
	return 1.0 - float64(levenshteinDistance(r1, r2))/float64(maxLen)
}

// tokenSimilarity is the share of query tokens that closely match a name token.
func tokenSimilarity(query, name string) float64 {
	queryTokens := strings.Fields(query)
	nameTokens := strings.Fields(name)
	if len(queryTokens) == 0 || len(nameTokens) == 0 {
		return 0.0
	}

	var matchCount int
	for _, qt := range queryTokens {
		for _, nt := range nameTokens {
			if stringSimilarity(qt, nt) > 0.8 {
				matchCount++
				break
			}
		}
	}
	return float64(matchCount) / float64(max(len(queryTokens), len(nameTokens)))
}

func levenshteinDistance(s1, s2 []rune) int {
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	prev := make([]int, len(s2)+1)
	curr := make([]int, len(s2)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(s1); i++ {
		curr[0] = i
		for j := 1; j <= len(s2); j++ {
			cost := 0
			if s1[i-1] != s2[j-1] {
				cost = 1
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(s2)]
}

func matchReasons(query, name string) []string {
	var reasons []string
	switch {
	case query == name:
		reasons = append(reasons, "Exact name match")
	case stringSimilarity(query, name) > 0.8:
		reasons = append(reasons, "Very similar name")
	}
	if first, _, _ := strings.Cut(name, " "); first == query && query != name {
		reasons = append(reasons, "First name match")
	}
	if tokenSimilarity(query, name) > 0.5 {
		reasons = append(reasons, "Matching name components")
	}
	if len(reasons) == 0 {
		reasons = append(reasons, "Partial name similarity")
	}
	return reasons
}
