// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package klaytn

import (
	"math/big"
	"strings"
)

// Network definitions
var (
	NetworkCypress = Network{
		Name:         "cypress",
		ChainId:      8217,
		PublicRpcUrl: "https://public-en-cypress.klaytn.net",
	}
	NetworkBaobab = Network{
		Name:         "baobab",
		ChainId:      1001,
		PublicRpcUrl: "https://public-en-baobab.klaytn.net",
	}
	NetworkLocal = Network{
		Name:    "local",
		ChainId: 1,
	}

	NetworkInvalid = Network{
		Name:    "invalid",
		ChainId: 0,
	} // NetworkInvalid is used as a return value for lookup functions when a network isn't found
)

// List of valid networks for use in lookup functions
var networks = []Network{
	NetworkCypress,
	NetworkBaobab,
	NetworkLocal,
}

// NetworkByName returns a predefined network by name. The lookup ignores case, and "mainnet"
// and "testnet" are accepted for cypress and baobab
func NetworkByName(name string) Network {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "mainnet":
		name = NetworkCypress.Name
	case "testnet":
		name = NetworkBaobab.Name
	}
	for _, network := range networks {
		if network.Name == name {
			return network
		}
	}
	return NetworkInvalid
}

// NetworkByChainId returns a predefined network by chain ID
func NetworkByChainId(chainId uint64) Network {
	for _, network := range networks {
		if network.ChainId == chainId {
			return network
		}
	}
	return NetworkInvalid
}

// Network represents a Klaytn network
type Network struct {
	Name         string
	ChainId      uint64 // chain ID bound into every signature
	PublicRpcUrl string
}

func (n Network) String() string {
	return n.Name
}

// ChainIdBig returns the chain ID in the form used by the ledger package, or nil for
// NetworkInvalid
func (n Network) ChainIdBig() *big.Int {
	if n.ChainId == 0 {
		return nil
	}
	return new(big.Int).SetUint64(n.ChainId)
}
