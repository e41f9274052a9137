// Package diagram declares architecture diagrams as code.
//
// # Overview
//
// A [Diagram] is a tree of labeled clusters containing [Node]s, plus a set
// of directed [Edge]s between nodes. Nodes carry a [Kind] that says what
// infrastructure element they stand for (a client, a DNS service, a compute
// instance) and how they are drawn.
//
// Declaration mirrors the nesting of the picture. [Diagram.Cluster] and
// [Cluster.Cluster] open a scope, run a function inside it and close it
// again:
//
//	d, _ := diagram.New("Web service", diagram.WithDirection(diagram.TopToBottom))
//	client := d.Node(aws.Client, "Client")
//	var dns, web *diagram.Node
//	d.Cluster("AWS", func(c *diagram.Cluster) {
//	    dns = c.Node(aws.Route53, "DNS")
//	    c.Cluster("VPC", func(vpc *diagram.Cluster) {
//	        web = vpc.Node(aws.EC2, "web")
//	    })
//	})
//	d.Chain([]*diagram.Node{client, dns, web})
//
// # Identity
//
// Nodes belong to the diagram that created them. [Diagram.Connect] rejects
// nodes of another diagram with an ErrCodeForeignNode error. IDs are random
// hex UUIDs unless [SequentialIDs] is installed with [WithIDGenerator].
//
// # Rendering
//
// This package only models the diagram. Serialization to DOT lives in
// [github.com/matzehuels/archdraw/pkg/render/dot], and drawing to files in
// [github.com/matzehuels/archdraw/pkg/pipeline].
package diagram
