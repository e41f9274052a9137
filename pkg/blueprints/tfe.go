package blueprints

import (
	"github.com/matzehuels/archdraw/pkg/diagram"
	"github.com/matzehuels/archdraw/pkg/diagram/nodes/aws"
)

func init() {
	register(Blueprint{
		Name:        "tfe-mounted-disk",
		Title:       "TFE FDO on Docker in Mounted Disk mode",
		Description: "Terraform Enterprise on a single EC2 instance in a public subnet, fronted by Route53",
		Direction:   diagram.TopToBottom,
		Declare:     declareMountedDisk,
	})
}

func declareMountedDisk(d *diagram.Diagram) error {
	client := d.Node(aws.Client, "Client")

	var dns, instance *diagram.Node
	d.Cluster("AWS", func(cloud *diagram.Cluster) {
		dns = cloud.Node(aws.Route53, "DNS")
		cloud.Cluster("VPC", func(vpc *diagram.Cluster) {
			vpc.Cluster("Public Subnet", func(subnet *diagram.Cluster) {
				instance = subnet.Node(aws.EC2, "TFE instance")
			})
		})
	})

	_, err := d.Chain([]*diagram.Node{client, dns, instance})
	return err
}
