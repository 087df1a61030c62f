package internal

/*
	watcher --> recursive fsnotify watch rooted at a single path.
	event --> classification of raw fsnotify operations into created / deleted / changed.

	** Usage
	1 - create a watcher over a given path with one or more callback functions.
	2 - callbacks run on the watcher goroutine, in the order the os reported the events.
	3 - Close releases the os watch and returns once no callback is running anymore.
*/
