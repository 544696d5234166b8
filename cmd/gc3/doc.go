// 19 Oct 2026

/*
Gc3 calculates the GC content at the third codon position (GC3) of the
genes of each chromosome, for a set of genomes.

Each genome is a primary transcript fasta file, found by adding "*" to
the path and keeping names ending in .fa, .fasta, .fas or .fna.
Chromosome names come from the fasta headers. If a primary header has
only an ID, the chromosome is looked up in the full cds file of the same
name, found by cutting the path at "primary".

Usage:
	gc3 -p path -c cutoff -o outfile -n nucleotides [flags]

The flags are:
	-p, --path prefix
		prefix of the primary fasta files, for example data/primary/
	-c, --cutoff percent
		genes with GC3 above this go to the outlier file
	-o, --outfile name
		one line per chromosome: species, clade, GC3 length, GC3 %, genes
	-i, --info name
		tab separated species and clade. Without it, the clade is NA
	-n, --nucleotides length
		outliers must also be longer than this
	--outlier-file name
		defaults to outlier_GC3_<cutoff>.tsv
	--chrom-stats name
		mean, standard deviation and median of gene GC3 per chromosome
	--positions name
		GC1, GC2 and GC3 per chromosome
	--plot-dir dir
		write a GC3 histogram for each genome
	--[no-]skip-spaced-header
		skip genomes whose first line contains a space (default on)
	--skip-unresolved
		leave out genes with no chromosome instead of stopping
	--progress
		progress bar on standard error
	--config file
		yaml, toml or json file with any of the long flag names as keys.
		The command line wins.
*/
package main
