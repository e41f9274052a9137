// Package aws provides node kinds for Amazon Web Services resources.
package aws

import "github.com/matzehuels/archdraw/pkg/diagram"

const provider = "aws"

func kind(category, name, shape, fill string) diagram.Kind {
	return diagram.Kind{Provider: provider, Category: category, Name: name, Shape: shape, FillColor: fill}
}

// General.
var (
	Client = kind("general", "Client", "box", "#F2F2F2")
	User   = kind("general", "User", "box", "#F2F2F2")
)

// Networking and content delivery.
var (
	Route53         = kind("network", "Route53", "box", "#D6C8F5")
	ELB             = kind("network", "ELB", "box", "#D6C8F5")
	CloudFront      = kind("network", "CloudFront", "box", "#D6C8F5")
	NATGateway      = kind("network", "NATGateway", "box", "#D6C8F5")
	InternetGateway = kind("network", "InternetGateway", "box", "#D6C8F5")
)

// Compute.
var (
	EC2    = kind("compute", "EC2", "box", "#FBD9B5")
	ECS    = kind("compute", "ECS", "box", "#FBD9B5")
	Lambda = kind("compute", "Lambda", "box", "#FBD9B5")
)

// Database and storage.
var (
	RDS = kind("database", "RDS", "cylinder", "#C9D7F8")
	EBS = kind("storage", "EBS", "cylinder", "#CDEBC5")
	S3  = kind("storage", "S3", "cylinder", "#CDEBC5")
)

// Kinds returns every kind in this package.
func Kinds() []diagram.Kind {
	return []diagram.Kind{
		Client, User,
		Route53, ELB, CloudFront, NATGateway, InternetGateway,
		EC2, ECS, Lambda,
		RDS, EBS, S3,
	}
}
