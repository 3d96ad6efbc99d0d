// Copyright 2025 go-highway Authors
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

package kern

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync/atomic"
	"unsafe"

	"github.com/ajroetker/go-elemwise/typelist"
)

// LayoutEnv names the environment variable read at startup to pick the
// layout policy: "warn" (default), "off" or "strict".
const LayoutEnv = "ELEMWISE_LAYOUT"

// LayoutPolicy decides what binding does with a multi-slot group whose
// slots are not all bound to one base address. Views of such a group are
// still placed at addr[i] + offset[i]*count, which only makes sense for a
// packed buffer.
type LayoutPolicy int32

const (
	// LayoutWarn logs one warning per offending group.
	LayoutWarn LayoutPolicy = iota
	// LayoutOff skips the check.
	LayoutOff
	// LayoutStrict panics at bind time.
	LayoutStrict
)

// String returns the policy name as accepted by ParseLayoutPolicy.
func (p LayoutPolicy) String() string {
	switch p {
	case LayoutWarn:
		return "warn"
	case LayoutOff:
		return "off"
	case LayoutStrict:
		return "strict"
	default:
		return fmt.Sprintf("LayoutPolicy(%d)", int32(p))
	}
}

// ParseLayoutPolicy parses a policy name, case-insensitively.
func ParseLayoutPolicy(s string) (LayoutPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "warn", "":
		return LayoutWarn, nil
	case "off":
		return LayoutOff, nil
	case "strict":
		return LayoutStrict, nil
	default:
		return LayoutWarn, fmt.Errorf("kern: unknown layout policy %q (want warn, off or strict)", s)
	}
}

var layoutPolicy atomic.Int32

func init() {
	v, ok := os.LookupEnv(LayoutEnv)
	if !ok {
		return
	}
	p, err := ParseLayoutPolicy(v)
	if err != nil {
		log.Printf("WARNING: %v; using %s", err, LayoutWarn)
		return
	}
	layoutPolicy.Store(int32(p))
}

// CurrentLayoutPolicy returns the process-wide layout policy.
func CurrentLayoutPolicy() LayoutPolicy {
	return LayoutPolicy(layoutPolicy.Load())
}

// SetLayoutPolicy replaces the process-wide layout policy and returns the
// previous one. Engines built WithLayoutPolicy ignore it.
func SetLayoutPolicy(p LayoutPolicy) LayoutPolicy {
	return LayoutPolicy(layoutPolicy.Swap(int32(p)))
}

// packed reports whether every address equals the first.
func packed(addrs []unsafe.Pointer) bool {
	for _, a := range addrs[min(1, len(addrs)):] {
		if a != addrs[0] {
			return false
		}
	}
	return true
}

func checkLayout(policy LayoutPolicy, name string, role Role, addrs []unsafe.Pointer) {
	if policy == LayoutOff || packed(addrs) {
		return
	}
	msg := fmt.Sprintf("kern: %s %s group binds %d slots to distinct addresses; "+
		"each view is placed at its own address plus the packed byte offset times count",
		name, role, len(addrs))
	if policy == LayoutStrict {
		panic(msg)
	}
	log.Printf("WARNING: %s", msg)
}

// checkArity panics when a group was not built by its InN/OutN constructor,
// for example a zero Input literal, and so holds the wrong number of
// addresses.
func checkArity(name string, role Role, addrs []unsafe.Pointer, types typelist.List) {
	if len(addrs) != types.Size() {
		panic(fmt.Sprintf("kern: %s %s group has %d addresses, want %d for %v",
			name, role, len(addrs), types.Size(), types))
	}
}
