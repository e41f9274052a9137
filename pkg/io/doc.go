// Package io reads and writes diagrams as data.
//
// # Definition Files
//
// A definition file declares a diagram in TOML, so it can be rendered
// without writing Go:
//
//	[diagram]
//	title = "TFE FDO on Docker in Mounted Disk mode"
//	direction = "TB"
//
//	[[cluster]]
//	id = "aws"
//	label = "AWS"
//
//	[[cluster]]
//	id = "vpc"
//	label = "VPC"
//	parent = "aws"
//
//	[[node]]
//	id = "client"
//	kind = "aws.general.Client"
//	label = "Client"
//
//	[[node]]
//	id = "dns"
//	kind = "aws.network.Route53"
//	label = "DNS"
//	cluster = "aws"
//
//	[[edge]]
//	from = "client"
//	to = "dns"
//
// Node kinds are registry keys (see package nodes); an empty kind draws a
// blank box. Clusters nest through parent; nodes join a cluster through
// cluster. Edges take an optional label, color, style and direction
// ("forward", "reverse", "both" or "none").
//
// Use [ImportTOML] to load a file, or [ReadTOML] for any io.Reader. Both
// reject unknown keys, duplicate IDs, dangling references, unknown kinds and
// cluster parent cycles with an ErrCodeInvalidDefinition error. [WriteTOML]
// turns a built diagram back into a definition file.
//
// # Structure JSON
//
// [WriteJSON] emits the structure of a diagram with clusters nested the way
// they are drawn:
//
//	{
//	  "title": "...",
//	  "filename": "...",
//	  "direction": "TB",
//	  "nodes": [{"id": "client", "label": "Client", "kind": "aws.general.Client"}],
//	  "clusters": [{"id": "aws", "label": "AWS", "nodes": [...], "clusters": [...]}],
//	  "edges": [{"from": "client", "to": "dns"}]
//	}
//
// IDs are derived from labels, so exports are stable across runs. [ReadJSON]
// re-imports the same structure.
package io
