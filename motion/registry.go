package motion

import (
	"cmp"
	"iter"
	"slices"
)

// Registry holds active instances grouped by priority. Higher priorities are
// resolved first. Within one priority, instances resolve in registration order.
type Registry struct {
	buckets map[int][]*instance
	order   []int // descending, rebuilt lazily
	dirty   bool
	next    Handle
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{buckets: make(map[int][]*instance)}
}

// Clear drops every instance without running completions.
func (r *Registry) Clear() {
	if r == nil {
		return
	}
	clear(r.buckets)
	r.order = r.order[:0]
	r.dirty = false
}

// Add registers d at priority, starting at start and lasting duration seconds.
// Durations are not validated; a non-positive one expires on the next sweep.
// A nil registry stores nothing and returns the zero Handle, which is never
// issued.
func (r *Registry) Add(d Directive, start, duration float64, priority int) Handle {
	if r == nil {
		return 0
	}
	if r.buckets == nil {
		r.buckets = make(map[int][]*instance)
	}
	r.next++
	in := &instance{
		handle:    r.next,
		directive: d,
		start:     start,
		duration:  duration,
	}
	bucket, ok := r.buckets[priority]
	if !ok {
		r.dirty = true
	}
	r.buckets[priority] = append(bucket, in)
	return in.handle
}

// PrioritiesDescending yields every priority that holds at least one instance,
// highest first.
func (r *Registry) PrioritiesDescending() iter.Seq[int] {
	return func(yield func(int) bool) {
		if r == nil {
			return
		}
		for _, p := range r.sortedPriorities() {
			if len(r.buckets[p]) == 0 {
				continue
			}
			if !yield(p) {
				return
			}
		}
	}
}

func (r *Registry) sortedPriorities() []int {
	if r.dirty {
		r.order = r.order[:0]
		for p := range r.buckets {
			r.order = append(r.order, p)
		}
		slices.SortFunc(r.order, func(a, b int) int { return cmp.Compare(b, a) })
		r.dirty = false
	}
	return r.order
}

// bucket returns the instances registered at priority in registration order.
func (r *Registry) bucket(priority int) []*instance {
	if r == nil {
		return nil
	}
	return r.buckets[priority]
}

// removeExpiredAt splits the bucket at priority. Instances matching expired
// are removed and their directives returned in registration order. The rest
// stay in place.
func (r *Registry) removeExpiredAt(priority int, expired func(*instance) bool) []Directive {
	if r == nil {
		return nil
	}
	bucket := r.buckets[priority]
	if len(bucket) == 0 {
		return nil
	}
	var out []Directive
	kept := bucket[:0]
	for _, in := range bucket {
		if expired(in) {
			out = append(out, in.directive)
			continue
		}
		kept = append(kept, in)
	}
	clear(bucket[len(kept):])
	r.setBucket(priority, kept)
	return out
}

// Remove drops the instance registered under h. Completions do not run.
func (r *Registry) Remove(h Handle) bool {
	if r == nil || h == 0 {
		return false
	}
	for p, bucket := range r.buckets {
		for i, in := range bucket {
			if in.handle != h {
				continue
			}
			r.setBucket(p, slices.Delete(bucket, i, i+1))
			return true
		}
	}
	return false
}

func (r *Registry) setBucket(priority int, bucket []*instance) {
	if len(bucket) == 0 {
		delete(r.buckets, priority)
		r.dirty = true
		return
	}
	r.buckets[priority] = bucket
}

// Len counts registered instances across all priorities.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	n := 0
	for _, bucket := range r.buckets {
		n += len(bucket)
	}
	return n
}

// Contains reports whether h is still registered.
func (r *Registry) Contains(h Handle) bool {
	if r == nil {
		return false
	}
	for _, bucket := range r.buckets {
		for _, in := range bucket {
			if in.handle == h {
				return true
			}
		}
	}
	return false
}
