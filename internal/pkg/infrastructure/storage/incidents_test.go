package storage

import (
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/diwise/oncall-mgmt/pkg/types"
)

func TestStatusUpdateToNewClearsCloseTimestamp(t *testing.T) {
	is := is.New(t)

	query := statusUpdateQuery(types.StatusNew)

	is.True(strings.Contains(query, "closed_on = NULL"))
}

func TestStatusUpdateToClosedKeepsOriginalCloseTimestamp(t *testing.T) {
	is := is.New(t)

	query := statusUpdateQuery(types.StatusClosed)

	is.True(strings.Contains(query, "closed_on = COALESCE(closed_on, @now)"))
}

func TestStatusUpdateToInProgressStampsFirstResponseOnce(t *testing.T) {
	is := is.New(t)

	query := statusUpdateQuery(types.StatusInProgress)

	is.True(strings.Contains(query, "acknowledged_on = COALESCE(acknowledged_on, @now)"))
	is.True(strings.Contains(query, "first_response_on = COALESCE(first_response_on, @now)"))
}
