package domain

// Engagement is derived from a post's loaded votes. None of these methods touch
// storage, load Votes first (Storage.GetPostWithVotes).
//
// The ledger is read literally: a user with both an upvote and a downvote entry
// on the same post answers true to both predicates, and Score sums everything.

// Score is the signed sum of vote values referencing the post, 0 when there are none.
func (p *Post) Score() int {
	score := 0
	for _, v := range p.Votes {
		if v.PostId == p.Id {
			score += int(v.Value)
		}
	}
	return score
}

func (p *Post) HasUpvoteFrom(userId UserId) bool {
	return p.hasVoteFrom(userId, Upvote)
}

func (p *Post) HasDownvoteFrom(userId UserId) bool {
	return p.hasVoteFrom(userId, Downvote)
}

func (p *Post) hasVoteFrom(userId UserId, value VoteValue) bool {
	for _, v := range p.Votes {
		if v.PostId == p.Id && v.UserId == userId && v.Value == value {
			return true
		}
	}
	return false
}

type PostEngagement struct {
	Score              int  `json:"score"`
	ViewerHasUpvoted   bool `json:"viewer_has_upvoted"`
	ViewerHasDownvoted bool `json:"viewer_has_downvoted"`
}

// Engagement computes the score and, for a non-nil viewer, their vote directions.
func (p *Post) Engagement(viewer *UserId) PostEngagement {
	e := PostEngagement{Score: p.Score()}
	if viewer != nil {
		e.ViewerHasUpvoted = p.HasUpvoteFrom(*viewer)
		e.ViewerHasDownvoted = p.HasDownvoteFrom(*viewer)
	}
	return e
}

// PostWithEngagement keeps the engagement in a named field, Post already has a
// Score method.
type PostWithEngagement struct {
	Post
	BodyHTML   string         `json:"body_html"`
	Engagement PostEngagement `json:"engagement"`
}
