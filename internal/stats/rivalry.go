package stats

import (
	"sort"

	"github.com/mauv0809/cribbage-board/internal/cribbage"
)

// tallyOpponents builds the head-to-head record against every opponent,
// ordered by opponent id.
func tallyOpponents(playerID string, games []cribbage.Game) []Rivalry {
	if playerID == "" {
		return nil
	}
	byOpponent := make(map[string]*Rivalry)
	for _, g := range games {
		opponent := g.Opponent(playerID)
		if opponent == "" || opponent == playerID {
			continue
		}
		r, ok := byOpponent[opponent]
		if !ok {
			r = &Rivalry{OpponentID: opponent}
			byOpponent[opponent] = r
		}
		r.TotalGames++
		if g.WinnerID == playerID {
			r.WinsAgainstThem++
		} else {
			r.LossesToThem++
		}
	}

	rivalries := make([]Rivalry, 0, len(byOpponent))
	for _, r := range byOpponent {
		r.WinRateAgainst = percentage(r.WinsAgainstThem, r.TotalGames)
		rivalries = append(rivalries, *r)
	}
	sort.Slice(rivalries, func(i, j int) bool {
		return rivalries[i].OpponentID < rivalries[j].OpponentID
	})
	return rivalries
}

// FindNemesis returns the opponent who has beaten the player most often among
// opponents met at least MinRivalryGames times. Ties go to the opponent the
// player has the lowest win rate against, then to the longer rivalry.
func (p Policy) FindNemesis(playerID string, games []cribbage.Game) *Rivalry {
	minGames := p.minRivalryGames()
	var best *Rivalry
	for _, r := range tallyOpponents(playerID, games) {
		if r.LossesToThem == 0 || r.TotalGames < minGames {
			continue
		}
		if best == nil || worseRecordAgainst(r, *best) {
			best = &r
		}
	}
	return best
}

func worseRecordAgainst(a, b Rivalry) bool {
	if a.LossesToThem != b.LossesToThem {
		return a.LossesToThem > b.LossesToThem
	}
	if a.WinRateAgainst != b.WinRateAgainst {
		return a.WinRateAgainst < b.WinRateAgainst
	}
	return a.TotalGames > b.TotalGames
}

// favoriteOpponent picks the opponent with the most wins against them,
// breaking ties by games played. Rivalries arrive ordered by id, so remaining
// ties keep the lowest id.
func favoriteOpponent(rivalries []Rivalry) *Rivalry {
	var best *Rivalry
	for _, r := range rivalries {
		if r.WinsAgainstThem == 0 {
			continue
		}
		if best == nil || r.WinsAgainstThem > best.WinsAgainstThem ||
			(r.WinsAgainstThem == best.WinsAgainstThem && r.TotalGames > best.TotalGames) {
			best = &r
		}
	}
	return best
}

// NemesisByPlayer finds the nemesis of every player that has one.
func (p Policy) NemesisByPlayer(players []cribbage.Player, games []cribbage.Game) map[string]*Rivalry {
	names := newRoster(players)
	nemeses := make(map[string]*Rivalry)
	for _, player := range players {
		if n := p.FindNemesis(player.ID, games); n != nil {
			n.OpponentName = names.name(n.OpponentID)
			nemeses[player.ID] = n
		}
	}
	return nemeses
}

type roster map[string]cribbage.Player

func newRoster(players []cribbage.Player) roster {
	r := make(roster, len(players))
	for _, p := range players {
		r[p.ID] = p
	}
	return r
}

func (r roster) name(id string) string {
	if p, ok := r[id]; ok {
		return p.Name()
	}
	return ""
}

func (r roster) fill(rivalry *Rivalry) {
	if rivalry != nil {
		rivalry.OpponentName = r.name(rivalry.OpponentID)
	}
}
