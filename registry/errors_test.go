package registry

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ethereum/go-ethereum/rpc"
	"github.com/stretchr/testify/assert"

	"github.com/solenne/gift-registry-backend/interfaces"
)

func TestClassifyRevertReasons(t *testing.T) {
	cases := []struct {
		reason string
		want   error
	}{
		{RevertNotOwner, interfaces.ErrNotOwner},
		{RevertOutOfRange, interfaces.ErrOutOfRange},
		{RevertDeleted, interfaces.ErrItemDeleted},
		{RevertAlreadyDeleted, interfaces.ErrAlreadyDeleted},
		{RevertAlreadyPurchased, interfaces.ErrAlreadyPurchased},
		{RevertEmptyPurchaser, interfaces.ErrEmptyName},
		{RevertZeroOwner, interfaces.ErrNullTarget},
	}

	for _, tc := range cases {
		t.Run(tc.reason, func(t *testing.T) {
			// Geth prefixes revert reasons when surfacing call errors.
			raw := fmt.Errorf("execution reverted: %s", tc.reason)
			assert.ErrorIs(t, classifyError(raw), tc.want)
		})
	}
}

func TestClassifyTransient(t *testing.T) {
	rateLimited := rpc.HTTPError{StatusCode: 429, Status: "429 Too Many Requests"}
	assert.ErrorIs(t, classifyError(rateLimited), interfaces.ErrTransient)

	unavailable := rpc.HTTPError{StatusCode: 503, Status: "503 Service Unavailable"}
	assert.ErrorIs(t, classifyError(unavailable), interfaces.ErrTransient)

	textual := errors.New("Too Many Requests")
	assert.ErrorIs(t, classifyError(textual), interfaces.ErrTransient)

	refused := errors.New("dial tcp 127.0.0.1:8545: connection refused")
	assert.ErrorIs(t, classifyError(refused), interfaces.ErrTransient)
}

func TestClassifyPassthrough(t *testing.T) {
	assert.NoError(t, classifyError(nil))

	opaque := errors.New("abi: cannot unmarshal")
	got := classifyError(opaque)
	assert.Equal(t, opaque, got)
	assert.False(t, interfaces.IsTransient(got))

	forbidden := rpc.HTTPError{StatusCode: 403, Status: "403 Forbidden"}
	assert.False(t, interfaces.IsTransient(classifyError(forbidden)))
}
