package iprange

import (
	"fmt"
	"math/big"
	"net/netip"
	"sync"

	"github.com/hansthienpondt/nipam/pkg/table"
	"go4.org/netipx"
	"k8s.io/apimachinery/pkg/labels"

	"github.com/TheHeadlessSourceMan/rangeTools/pkg/numberlike"
	"github.com/TheHeadlessSourceMan/rangeTools/pkg/ranges"
	"github.com/TheHeadlessSourceMan/rangeTools/pkg/rangetable"
)

// Table claims individual addresses out of an IP range. Addresses are
// mapped to int64 offsets from the range start, and occupancy is
// tracked by a rangetable over that index space, so consecutive
// claims coalesce and free lookups walk the gaps.
type Table interface {
	Get(addr string) (table.Route, error)
	Claim(addr string, d table.Route) error
	Release(addr string) error
	Update(addr string, d table.Route) error

	Count() int
	Has(addr string) bool

	IsFree(addr string) bool
	FindFree() (netip.Addr, error)

	GetAll() table.Routes
	GetByLabel(selector labels.Selector) table.Routes
}

func New(from, to netip.Addr) Table {
	arith := numberlike.Int64{}
	size := int64(numIPs(from, to))
	return &ipTable{
		m:       new(sync.RWMutex),
		table:   rangetable.New[int64](arith, ranges.New[int64](arith, 0, size)),
		routes:  map[int64]table.Route{},
		ipRange: netipx.IPRangeFrom(from, to),
	}
}

type ipTable struct {
	m       *sync.RWMutex
	table   rangetable.Table[int64]
	routes  map[int64]table.Route
	ipRange netipx.IPRange
}

func (r *ipTable) Get(addr string) (table.Route, error) {
	claimIP, err := r.validateIP(addr)
	if err != nil {
		return table.Route{}, err
	}
	r.m.RLock()
	defer r.m.RUnlock()

	id := calculateIndex(claimIP, r.ipRange.From())
	route, ok := r.routes[id]
	if !ok {
		return table.Route{}, fmt.Errorf("no match found for: %s", addr)
	}
	return route, nil
}

func (r *ipTable) Claim(addr string, d table.Route) error {
	claimIP, err := r.validateIP(addr)
	if err != nil {
		return err
	}
	r.m.Lock()
	defer r.m.Unlock()

	id := calculateIndex(claimIP, r.ipRange.From())
	if err := r.table.ClaimValue(id, d.Labels()); err != nil {
		return fmt.Errorf("claim failed ip %s already claimed", addr)
	}
	r.routes[id] = d
	return nil
}

func (r *ipTable) Release(addr string) error {
	claimIP, err := r.validateIP(addr)
	if err != nil {
		return err
	}
	r.m.Lock()
	defer r.m.Unlock()

	id := calculateIndex(claimIP, r.ipRange.From())
	if _, ok := r.routes[id]; !ok {
		return nil
	}
	if err := r.table.Release(addrSlot(id)); err != nil {
		return err
	}
	delete(r.routes, id)
	return nil
}

func (r *ipTable) Update(addr string, d table.Route) error {
	claimIP, err := r.validateIP(addr)
	if err != nil {
		return err
	}
	r.m.Lock()
	defer r.m.Unlock()

	id := calculateIndex(claimIP, r.ipRange.From())
	if _, ok := r.routes[id]; !ok {
		return fmt.Errorf("update failed ip %s not claimed", addr)
	}
	if err := r.table.Update(addrSlot(id), d.Labels()); err != nil {
		return err
	}
	r.routes[id] = d
	return nil
}

func (r *ipTable) Count() int {
	r.m.RLock()
	defer r.m.RUnlock()

	return len(r.routes)
}

func (r *ipTable) Has(addr string) bool {
	claimIP, err := r.validateIP(addr)
	if err != nil {
		return false
	}
	r.m.RLock()
	defer r.m.RUnlock()

	_, ok := r.routes[calculateIndex(claimIP, r.ipRange.From())]
	return ok
}

func (r *ipTable) IsFree(addr string) bool {
	claimIP, err := r.validateIP(addr)
	if err != nil {
		return false
	}
	r.m.RLock()
	defer r.m.RUnlock()

	return r.table.IsFree(addrSlot(calculateIndex(claimIP, r.ipRange.From())))
}

func (r *ipTable) FindFree() (netip.Addr, error) {
	r.m.RLock()
	defer r.m.RUnlock()

	free, err := r.table.FindFree(1)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("no free entry found")
	}
	return calculateIPFromIndex(r.ipRange.From(), free.Low()), nil
}

func (r *ipTable) GetAll() table.Routes {
	r.m.RLock()
	defer r.m.RUnlock()

	var routes table.Routes
	for _, route := range r.routes {
		routes = append(routes, route)
	}
	return routes
}

func (r *ipTable) GetByLabel(selector labels.Selector) table.Routes {
	r.m.RLock()
	defer r.m.RUnlock()

	var routes table.Routes
	for _, route := range r.routes {
		if selector.Matches(route.Labels()) {
			routes = append(routes, route)
		}
	}
	return routes
}

func (r *ipTable) validateIP(addr string) (netip.Addr, error) {
	claimIP, err := netip.ParseAddr(addr)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("ip address %s is invalid", addr)
	}
	if !r.ipRange.Contains(claimIP) {
		return netip.Addr{}, fmt.Errorf("ip address %s, does not fit in the range from %s to %s", addr, r.ipRange.From().String(), r.ipRange.To().String())
	}
	return claimIP, nil
}

func addrSlot(id int64) ranges.Range[int64] {
	return ranges.New[int64](numberlike.Int64{}, id, id+1)
}

func calculateIndex(ip, start netip.Addr) int64 {
	return new(big.Int).Sub(ipToInt(ip), ipToInt(start)).Int64()
}

func numIPs(startIP, endIP netip.Addr) int {
	start := ipToInt(startIP)
	end := ipToInt(endIP)

	diff := new(big.Int).Sub(end, start)
	return int(diff.Int64()) + 1 // include the start IP
}

func ipToInt(ip netip.Addr) *big.Int {
	bytes := ip.As16()
	ipInt := new(big.Int)
	ipInt.SetBytes(bytes[:])
	return ipInt
}

func calculateIPFromIndex(startIP netip.Addr, id int64) netip.Addr {
	ipInt := new(big.Int).Add(ipToInt(startIP), big.NewInt(id))
	ipBytes := ipInt.Bytes()

	if len(ipBytes) < 16 {
		// pad to a full 16-byte address
		paddedBytes := make([]byte, 16-len(ipBytes))
		ipBytes = append(paddedBytes, ipBytes...)
	}

	var ip16 [16]byte
	copy(ip16[:], ipBytes)

	if startIP.Is4() {
		return netip.AddrFrom4(netip.AddrFrom16(ip16).As4())
	}
	return netip.AddrFrom16(ip16)
}
