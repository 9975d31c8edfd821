// Package publish builds a release and packages its output as a zip archive.
//
// [Pack] runs the build command selected for the host platform, checks that
// it produced the build output directory, stages a copy of that directory
// under a fixed bundle name, and compresses the staging directory into
// "{product}-{arch}-{platform}.zip" inside the publish directory. The staging
// directory is removed afterwards, whether or not archiving succeeded.
//
// A build counts as failed when the command exits non-zero or when it exits
// zero without producing the output directory. Both cases are reported before
// anything is written to disk, as [ErrCommandFailed] and [ErrOutputMissing]
// respectively. [ErrOutputMissing] also satisfies errdefs.IsNotFound.
//
// Example usage:
//
//	if err := publish.ResetDir("publish"); err != nil {
//	    return err
//	}
//	result, err := publish.Pack(ctx, host, shell.New(), publish.Options{
//	    Command:        "make release",
//	    WindowsCommand: "build.bat",
//	    Product:        "NotPong",
//	})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(result.Archive, result.Digest)
package publish
