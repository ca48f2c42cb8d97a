package proto

import (
	"testing"

	"github.com/dmitrijs2005/salesmatch/internal/common"
	"github.com/dmitrijs2005/salesmatch/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protojson"
	gproto "google.golang.org/protobuf/proto"
)

func TestToAccount_RejectsUnknownStatus(t *testing.T) {
	_, err := ToAccount(&Account{Id: 1, Status: "Maybe"})
	assert.ErrorIs(t, err, common.ErrInvalidStatus)

	_, err = ToAccount(nil)
	assert.Error(t, err)
}

func TestFromAccount_ToAccount(t *testing.T) {
	seed, err := models.Seed()
	require.NoError(t, err)

	for _, a := range seed {
		got, err := ToAccount(FromAccount(a.WithStatus(models.StatusTarget)))
		require.NoError(t, err)
		assert.Equal(t, a.WithStatus(models.StatusTarget), got)
	}
}

func TestAccount_WireRoundTrip(t *testing.T) {
	in := &UpdateStatusResponse{Account: &Account{
		Id:         6,
		Name:       "Healthcare Systems",
		Employees:  900,
		MatchScore: 88,
		Status:     "Target",
	}}

	b, err := gproto.Marshal(in)
	require.NoError(t, err)

	out := &UpdateStatusResponse{}
	require.NoError(t, gproto.Unmarshal(b, out))
	assert.True(t, gproto.Equal(in, out))
	assert.Equal(t, "Healthcare Systems", out.GetAccount().GetName())
}

func TestAccount_JSONNames(t *testing.T) {
	b, err := protojson.Marshal(&Account{Id: 3, MatchScore: 78})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"3","matchScore":"78"}`, string(b))
}

func TestServiceDescriptor(t *testing.T) {
	sd := File_internal_proto_salesmatch_proto.Services().ByName("AccountService")
	require.NotNil(t, sd)
	assert.Equal(t, 5, sd.Methods().Len())
	assert.Equal(t, "salesmatch.AccountService", AccountService_ServiceDesc.ServiceName)
	assert.Equal(t, "/"+string(sd.FullName())+"/Ping", AccountService_Ping_FullMethodName)
}
