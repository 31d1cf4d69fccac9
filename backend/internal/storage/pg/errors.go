package pg

import (
	internal_errors "github.com/itchan-dev/forum/shared/errors"
	sharedpg "github.com/itchan-dev/forum/shared/storage/pg"
)

// referenced names the row a foreign key points at.
var referenced = map[string]string{
	"posts_topic_id_fkey":    "Topic",
	"posts_user_id_fkey":     "User",
	"votes_user_id_fkey":     "User",
	"votes_post_id_fkey":     "Post",
	"comments_post_id_fkey":  "Post",
	"comments_user_id_fkey":  "User",
	"favorites_post_id_fkey": "Post",
	"favorites_user_id_fkey": "User",
}

// missingReference turns a foreign key violation into a NotFound naming the
// missing row. It returns nil for any other error.
func missingReference(err error) error {
	constraint, ok := sharedpg.ForeignKeyViolation(err)
	if !ok {
		return nil
	}
	name, known := referenced[constraint]
	if !known {
		name = "Referenced row"
	}
	return internal_errors.NotFound(name + " not found")
}
