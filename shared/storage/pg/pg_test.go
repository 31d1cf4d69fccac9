package pg

import (
	"errors"
	"fmt"
	"testing"

	"github.com/itchan-dev/forum/shared/config"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestViolations(t *testing.T) {
	fk := &pq.Error{Code: "23503", Constraint: "votes_post_id_fkey"}
	unique := &pq.Error{Code: "23505", Constraint: "users_email_key"}

	constraint, ok := ForeignKeyViolation(fmt.Errorf("insert vote: %w", fk))
	assert.True(t, ok)
	assert.Equal(t, "votes_post_id_fkey", constraint)

	_, ok = ForeignKeyViolation(unique)
	assert.False(t, ok)

	constraint, ok = UniqueViolation(unique)
	assert.True(t, ok)
	assert.Equal(t, "users_email_key", constraint)

	_, ok = CheckViolation(errors.New("plain"))
	assert.False(t, ok)
}

func TestConnString(t *testing.T) {
	s := ConnString(config.Pg{Host: "h", Port: 5432, User: "u", Password: "p", Dbname: "d"})
	assert.Equal(t, "host=h port=5432 user=u password=p dbname=d sslmode=disable", s)
}
