package contracts

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Event team roles as stored by the events facet.
var (
	RoleAdmin        = common.Hash{}
	RoleModerator    = crypto.Keccak256Hash([]byte("MODERATOR_ROLE"))
	RoleReceptionist = crypto.Keccak256Hash([]byte("RECEPTIONIST_ROLE"))
)

// RoleName returns the name of a known role and false for any other value.
func RoleName(role [32]byte) (string, bool) {
	switch common.Hash(role) {
	case RoleAdmin:
		return "admin", true
	case RoleModerator:
		return "moderator", true
	case RoleReceptionist:
		return "receptionist", true
	default:
		return "", false
	}
}
