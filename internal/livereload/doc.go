// Package livereload refreshes browsers when docs content changes.
//
// A Watcher observes the content directories with fsnotify and
// debounces bursts of events. The Server half holds the WebSocket
// connections of open browser tabs and broadcasts a reload message
// when the watcher fires.
package livereload
