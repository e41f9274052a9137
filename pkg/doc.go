// Package pkg holds the public libraries behind archdraw.
//
// # Overview
//
// archdraw turns a declared deployment topology into a Graphviz diagram. The
// packages form one pipeline:
//
//	Go code / TOML definition / blueprint
//	         ↓
//	    [diagram] package (nodes, clusters, edges)
//	         ↓
//	    [render/dot] package (DOT source)
//	         ↓
//	    [render] package (PNG/JPG/SVG/PDF bytes)
//	         ↓
//	    [pipeline] package (files on disk, optional viewer)
//
// # Quick Start
//
//	res, err := pipeline.Build(ctx, "TFE FDO on Docker in Mounted Disk mode",
//	    []diagram.Option{diagram.WithDirection(diagram.TopToBottom)},
//	    pipeline.Options{},
//	    func(d *diagram.Diagram) error {
//	        client := d.Node(aws.Client, "Client")
//	        var dns, instance *diagram.Node
//	        d.Cluster("AWS", func(cloud *diagram.Cluster) {
//	            dns = cloud.Node(aws.Route53, "DNS")
//	            cloud.Cluster("VPC", func(vpc *diagram.Cluster) {
//	                vpc.Cluster("Public Subnet", func(sn *diagram.Cluster) {
//	                    instance = sn.Node(aws.EC2, "TFE instance")
//	                })
//	            })
//	        })
//	        _, err := d.Chain([]*diagram.Node{client, dns, instance})
//	        return err
//	    })
//
// # Supporting packages
//
//   - [io]: TOML definition files and JSON structure export
//   - [blueprints]: built-in diagrams, including tfe-mounted-disk
//   - [cache]: rendered artifact cache keyed by DOT source
//   - [errors]: structured error codes and validators
//   - [observability]: draw hooks for metrics and tracing
//   - [buildinfo]: version information set at build time
package pkg
