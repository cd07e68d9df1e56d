package metrics

const namespace = "hydra_trp"

func statusOf(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
