package navigation

import "strings"

// Router is the navigation collaborator: it moves the application to a
// destination and answers whether a destination is the current route.
type Router interface {
	Navigate(path string)
	IsActive(path string) bool
}

// PathRouter is a Router over a known current path. Navigation is passed
// to OnNavigate; the current path is updated so IsActive follows along.
type PathRouter struct {
	Current    string
	OnNavigate func(path string)
}

// Navigate records path as current and forwards it
func (r *PathRouter) Navigate(path string) {
	r.Current = path
	if r.OnNavigate != nil {
		r.OnNavigate(path)
	}
}

// IsActive reports whether path matches the current route
func (r *PathRouter) IsActive(path string) bool {
	return MatchesRoute(path, r.Current)
}

// MatchesRoute reports whether a menu entry path is active for the current
// path. An entry matches its own route and every route beneath it, split on
// segment boundaries, ignoring case. The root entry only matches the root.
func MatchesRoute(entryPath, currentPath string) bool {
	entry := strings.ToLower(normalizePath(entryPath))
	current := strings.ToLower(normalizePath(currentPath))
	if entry == current {
		return true
	}
	if entry == "/" {
		return false
	}
	return strings.HasPrefix(current, entry+"/")
}

func normalizePath(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if path == "" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			path = "/"
		}
	}
	return path
}
