/*
Package operation runs a migration pass over a list of files.

	+-------------+     +-----------+     +-------------+
	|  read file  | --> |  Catalog  | --> |  writeback  |
	|   (once)    |     | (Rewrite) |     | (MaybeWrite)|
	+-------------+     +-----------+     +-------------+

🔄 Flow:
1. Reads the full content of a file, releasing the handle
2. Rewrites the content with the catalog (pure, no I/O)
3. Hands original and final content to the write-back controller
4. Reports changed files via the console logger

Files are processed one at a time in the order they were enumerated. The first
I/O error stops the pass; files already written stay written, and because the
shipped rules are idempotent the pass can simply be run again.

🔍 Example:

	op := operation.NewMigrateOperation(operation.Options{
		Catalog: catalog,
		Writer:  writeback.NewController(false),
		Logger:  console,
		Files:   files,
	})
	if err := operation.NewRunner().Run(ctx, op); err != nil {
		return err
	}
*/
package operation
