package validation

import (
	"testing"

	internal_errors "github.com/itchan-dev/forum/shared/errors"
	"github.com/itchan-dev/forum/shared/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStruct(t *testing.T) {
	t.Run("valid post", func(t *testing.T) {
		err := Struct(domain.PostCreationData{Title: "t", Body: "b", TopicId: 1, UserId: 1})
		assert.NoError(t, err)
	})

	t.Run("post with only a title reports every missing field", func(t *testing.T) {
		err := Struct(domain.PostCreationData{Title: "Pros of Cryosleep during the long journey"})
		require.Error(t, err)

		var verr *internal_errors.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Problems, "body is required")
		assert.Contains(t, verr.Problems, "topic_id is required")
		assert.Contains(t, verr.Problems, "user_id is required")
		assert.NotContains(t, verr.Problems, "title is required")
	})

	t.Run("nested topic posts use their path", func(t *testing.T) {
		err := Struct(domain.TopicCreationData{
			Title:       "Expeditions",
			Description: "Reports",
			Posts:       []domain.NestedPostData{{Title: "first", UserId: 1}},
		})
		var verr *internal_errors.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []string{"posts[0].body is required"}, verr.Problems)
	})

	t.Run("credentials", func(t *testing.T) {
		err := Struct(domain.Credentials{Email: "not-an-email", Password: "short"})
		var verr *internal_errors.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Problems, "email must be a valid email")
		assert.Contains(t, verr.Problems, "password must be at least 8 characters")
	})
}
