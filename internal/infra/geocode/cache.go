package geocode

import (
	"context"
	"sync"
	"time"

	"agroalert/internal/domain/entity"
	"agroalert/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/quadtree"
)

var worldBound = orb.Bound{Min: orb.Point{-180, -90}, Max: orb.Point{180, 90}}

type cachedPlace struct {
	point     orb.Point
	place     *entity.Place
	expiresAt time.Time
}

func (p *cachedPlace) Point() orb.Point {
	return p.point
}

// CachedGeocoder reuses a previous lookup for coordinates close to it.
type CachedGeocoder struct {
	next         service.ReverseGeocoder
	radiusMeters float64
	ttl          time.Duration
	maxEntries   int
	now          func() time.Time

	mu      sync.Mutex
	tree    *quadtree.Quadtree
	entries []*cachedPlace // insertion order, oldest first
}

// NewCachedGeocoder wraps next with a proximity cache holding at most maxEntries places.
func NewCachedGeocoder(next service.ReverseGeocoder, radiusMeters float64, ttl time.Duration, maxEntries int) *CachedGeocoder {
	if maxEntries <= 0 {
		maxEntries = 1
	}

	return &CachedGeocoder{
		next:         next,
		radiusMeters: radiusMeters,
		ttl:          ttl,
		maxEntries:   maxEntries,
		now:          time.Now,
		tree:         quadtree.New(worldBound),
	}
}

// ReverseGeocode returns a cached place within the radius or delegates to the wrapped geocoder.
func (g *CachedGeocoder) ReverseGeocode(ctx context.Context, coords entity.Coordinates) (*entity.Place, error) {
	if place, ok := g.lookup(coords.Point()); ok {
		return place, nil
	}

	place, err := g.next.ReverseGeocode(ctx, coords)
	if err != nil {
		return nil, err
	}
	if !place.IsEmpty() {
		g.store(coords.Point(), place)
	}

	return place, nil
}

// lookup scans the entries inside a bound around point and keeps the closest by
// great-circle distance. Planar nearest in degrees is wrong away from the equator.
func (g *CachedGeocoder) lookup(point orb.Point) (*entity.Place, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	bound := geo.NewBoundAroundPoint(point, g.radiusMeters)
	candidates := g.tree.InBoundMatching(nil, bound, func(p orb.Pointer) bool {
		return now.Before(p.(*cachedPlace).expiresAt)
	})

	var (
		best     *cachedPlace
		bestDist float64
	)
	for _, candidate := range candidates {
		entry := candidate.(*cachedPlace)
		dist := geo.Distance(point, entry.point)
		if dist > g.radiusMeters {
			continue
		}
		if best == nil || dist < bestDist {
			best, bestDist = entry, dist
		}
	}
	if best == nil {
		return nil, false
	}

	return best.place, true
}

func (g *CachedGeocoder) store(point orb.Point, place *entity.Place) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.evictExpired()
	for len(g.entries) >= g.maxEntries {
		g.remove(g.entries[0])
		g.entries = g.entries[1:]
	}

	entry := &cachedPlace{point: point, place: place, expiresAt: g.now().Add(g.ttl)}
	if err := g.tree.Add(entry); err != nil {
		return
	}
	g.entries = append(g.entries, entry)
}

// evictExpired drops expired entries from the front. Entries share one TTL so
// insertion order is also expiry order.
func (g *CachedGeocoder) evictExpired() {
	now := g.now()
	for len(g.entries) > 0 && !now.Before(g.entries[0].expiresAt) {
		g.remove(g.entries[0])
		g.entries = g.entries[1:]
	}
}

func (g *CachedGeocoder) remove(entry *cachedPlace) {
	g.tree.Remove(entry, func(p orb.Pointer) bool {
		return p == entry
	})
}

// Len returns the number of cached places, expired ones included.
func (g *CachedGeocoder) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return len(g.entries)
}
