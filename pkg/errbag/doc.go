// Package errbag provides the error collector used by the validation engine:
// an ordered mapping from dot-separated field paths to lists of violations.
//
// A Bag belongs to exactly one validation pass. The engine fills it while
// traversing an entity graph, re-keying nested violations with their parent
// field path as they bubble up (`customer.email`, `items.7.quantity`). After
// the pass the bag is the caller's read-only view of everything that failed.
//
// # Usage
//
//	bag := errbag.New()
//	bag.Add("email", "must be a valid email address", map[string]any{"name": "email"})
//
//	if bag.Any() {
//	    for _, path := range bag.Paths() {
//	        for _, v := range bag.For(path) {
//	            fmt.Println(path, v.Message)
//	        }
//	    }
//	}
//
// Bags marshal to the wire shape `{"path": [{"message": ..., "context": ...}]}`
// so HTTP handlers can render per-field errors without any translation step.
package errbag
