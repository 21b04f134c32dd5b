/*
Package watch reparses sequence configuration files as they change on disk.

A Service combines a debounced fsnotify watcher with a scheduled full
rescan. Every parse attempt is logged, counted in Prometheus metrics, and
optionally recorded in the parse-audit registry. The last successfully
parsed program for each file is kept in memory:

	svc, err := watch.NewService(watch.ServiceConfig{
		Watch: cfg.Watch,
		Parse: cfg.Parse,
	})
	if err != nil {
		log.Fatal(err)
	}
	err = svc.Run(ctx)

A failed reparse never evicts the previous good program; the file stays
served from its last accepted state until a corrected version appears.
*/
package watch
