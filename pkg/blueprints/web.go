package blueprints

import (
	"github.com/matzehuels/archdraw/pkg/diagram"
	"github.com/matzehuels/archdraw/pkg/diagram/nodes/aws"
)

func init() {
	register(Blueprint{
		Name:        "three-tier",
		Title:       "Three tier web application",
		Description: "Load balanced EC2 web tier with an RDS database and S3 assets",
		Direction:   diagram.LeftToRight,
		Declare:     declareThreeTier,
	})
	register(Blueprint{
		Name:        "static-site",
		Title:       "Static site on S3",
		Description: "CloudFront distribution serving an S3 bucket behind Route53",
		Direction:   diagram.LeftToRight,
		Declare:     declareStaticSite,
	})
}

func declareThreeTier(d *diagram.Diagram) error {
	user := d.Node(aws.User, "Users")

	var dns, lb, db, assets *diagram.Node
	var web []*diagram.Node
	d.Cluster("AWS", func(cloud *diagram.Cluster) {
		dns = cloud.Node(aws.Route53, "DNS")
		assets = cloud.Node(aws.S3, "assets")
		cloud.Cluster("VPC", func(vpc *diagram.Cluster) {
			vpc.Cluster("Public Subnet", func(pub *diagram.Cluster) {
				lb = pub.Node(aws.ELB, "load balancer")
			})
			vpc.Cluster("Private Subnet", func(priv *diagram.Cluster) {
				for _, name := range []string{"web 1", "web 2"} {
					web = append(web, priv.Node(aws.EC2, name))
				}
				db = priv.Node(aws.RDS, "database")
			})
		})
	})

	if _, err := d.Chain([]*diagram.Node{user, dns, lb}); err != nil {
		return err
	}
	for _, w := range web {
		if _, err := d.Connect(lb, w); err != nil {
			return err
		}
		if _, err := d.Connect(w, db, diagram.WithLabel("sql")); err != nil {
			return err
		}
		if _, err := d.Connect(w, assets, diagram.WithStyle("dashed")); err != nil {
			return err
		}
	}
	return nil
}

func declareStaticSite(d *diagram.Diagram) error {
	visitor := d.Node(aws.User, "Visitor")

	var dns, cdn, bucket *diagram.Node
	d.Cluster("AWS", func(cloud *diagram.Cluster) {
		dns = cloud.Node(aws.Route53, "DNS")
		cdn = cloud.Node(aws.CloudFront, "CDN")
		bucket = cloud.Node(aws.S3, "site bucket")
	})

	_, err := d.Chain([]*diagram.Node{visitor, dns, cdn, bucket})
	return err
}
