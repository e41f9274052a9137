// Package pipeline draws diagrams to files.
//
// [Draw] is the finalizer of a diagram's scope: it validates the diagram,
// seals it against further changes, serializes it to DOT, renders every
// requested format and writes "<filename>.<ext>" into the output directory.
// When the diagram asks to be shown, the first file is opened with the
// system viewer.
//
// [Build] combines declaration and drawing in one call:
//
//	res, err := pipeline.Build(ctx, "Web service", nil, pipeline.Options{},
//	    func(d *diagram.Diagram) error {
//	        lb := d.Node(aws.ELB, "lb")
//	        web := d.Node(aws.EC2, "web")
//	        _, err := d.Connect(lb, web)
//	        return err
//	    })
//
// Failures are not retried and partial output is not cleaned up.
package pipeline
