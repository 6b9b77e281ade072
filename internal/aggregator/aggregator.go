package aggregator

import (
	"errors"

	"github.com/povarna/generative-ai-agents/skills-agent/internal/models"
	"github.com/rs/zerolog"
)

var ErrNoResponses = errors.New("no responses to aggregate")

// Plurality returns the most frequent value of responses. On a tie the value
// whose first occurrence comes earliest wins.
func Plurality(responses []int) (int, error) {
	tally, err := count(responses)
	if err != nil {
		return 0, err
	}
	return tally[0].Value, nil
}

// count returns one entry per distinct value, ordered by count descending and
// then by first occurrence.
func count(responses []int) ([]models.VoteCount, error) {
	if len(responses) == 0 {
		return nil, ErrNoResponses
	}

	index := make(map[int]int, len(responses))
	tally := make([]models.VoteCount, 0, len(responses))
	for _, r := range responses {
		i, ok := index[r]
		if !ok {
			i = len(tally)
			index[r] = i
			tally = append(tally, models.VoteCount{Value: r})
		}
		tally[i].Count++
	}

	// stable insertion sort keeps first-occurrence order among equal counts
	for i := 1; i < len(tally); i++ {
		for j := i; j > 0 && tally[j].Count > tally[j-1].Count; j-- {
			tally[j], tally[j-1] = tally[j-1], tally[j]
		}
	}

	return tally, nil
}

type Aggregator struct {
	logger *zerolog.Logger
}

func NewAggregator(logger *zerolog.Logger) *Aggregator {
	return &Aggregator{
		logger: logger,
	}
}

// Aggregate reduces the trial answers to a single voted answer.
func (a *Aggregator) Aggregate(responses []int) (models.Vote, error) {
	tally, err := count(responses)
	if err != nil {
		return models.Vote{}, err
	}

	vote := models.Vote{
		Answer: tally[0].Value,
		Count:  tally[0].Count,
		Total:  len(responses),
		Tally:  tally,
	}

	a.logger.
		Info().
		Int("answer", vote.Answer).
		Int("votes", vote.Count).
		Int("total", vote.Total).
		Msg("aggregation complete")
	return vote, nil
}
